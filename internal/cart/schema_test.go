package cart

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repository addresses cart_items columns by name; the DDL must declare
// exactly those names or every cart operation fails at runtime.
func TestCartItemsSchemaDeclaresRepositoryColumns(t *testing.T) {
	ddl, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	m := regexp.MustCompile(`(?s)CREATE TABLE cart_items \((.*?)\);`).FindSubmatch(ddl)
	require.NotNil(t, m, "cart_items DDL not found")
	table := string(m[1])

	for _, col := range []string{
		"id", "user_id", "product_name", "product_price", "product_image", "quantity", "created_at",
	} {
		assert.Regexp(t, `(?m)^\s*`+col+`\s`, table, "cart_items is missing column %s", col)
	}
}
