package reactgen

import (
	"github.com/thisprojects/react-gen/internal/catalog"
	"github.com/thisprojects/react-gen/internal/index"
)

// Public aliases for the internal types that appear in the Engine API, so
// callers never import internal packages.

type Index = index.Index
type FileRecord = index.FileRecord
type Category = index.Category
type Template = catalog.Template
type Catalog = catalog.Catalog

const (
	CategoryComponent = index.CategoryComponent
	CategoryUtility   = index.CategoryUtility
	CategoryTest      = index.CategoryTest
)
