package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeConfig points the store at a temp SQLite file and both registries at an empty fake
func writeConfig(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"body":{"items":[]},"response":{"body":{"items":""}}}`))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	content := fmt.Sprintf(`server:
  environment: test
database:
  driver: sqlite
  dsn: %s
haccp:
  base_url: %s
  timeout: 2s
foodqr:
  base_url: %s
  timeout: 2s
`, filepath.Join(dir, "products.db"), server.URL, server.URL)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "allergenctl v1.0.0\n", out)
}

func TestDetect(t *testing.T) {
	out, err := run(t, "detect", "소맥분,", "돼지고기,", "우유")
	require.NoError(t, err)
	assert.Contains(t, out, "돼지고기 (Pork): 돼지고기, 돼지")
	assert.Contains(t, out, "우유 (Milk & Dairy): 우유")
}

func TestDetect_None(t *testing.T) {
	out, err := run(t, "detect", "정제수")
	require.NoError(t, err)
	assert.Equal(t, "No allergens detected\n", out)
}

func TestDetect_JSONStripsMarkup(t *testing.T) {
	out, err := run(t, "detect", "--json", "<p>땅콩</p>")
	require.NoError(t, err)

	var body map[string]struct {
		English  string   `json:"english"`
		Detected []string `json:"detected"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "Peanut", body["땅콩"].English)
	assert.Equal(t, []string{"땅콩"}, body["땅콩"].Detected)
}

func TestDetect_Stdin(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("<ul><li>달걀</li><li>새우</li></ul>"))
	cmd.SetArgs([]string{"detect"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "계란 (Egg): 달걀")
	assert.Contains(t, out.String(), "갑각류 (Crustaceans): 새우")
}

func TestProductsAddListLookup(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "--config", cfg, "products", "add",
		"--name", "수제 소시지", "--barcode", "8800000000011", "--raw-materials", "돼지고기, 정제소금")
	require.NoError(t, err)
	assert.Contains(t, out, "수제 소시지")

	out, err = run(t, "--config", cfg, "products", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "8800000000011")
	assert.Contains(t, out, "1 product(s)")

	out, err = run(t, "--config", cfg, "--json", "lookup", "8800000000011")
	require.NoError(t, err)

	var result struct {
		ProductName      string                     `json:"productName"`
		Source           string                     `json:"source"`
		FoundIngredients map[string]json.RawMessage `json:"foundIngredients"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "수제 소시지", result.ProductName)
	assert.Equal(t, "Custom Database", result.Source)
	assert.Contains(t, result.FoundIngredients, "돼지고기")
}

func TestProductsAdd_Errors(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, "--config", cfg, "products", "add", "--name", "두부", "--raw-materials", "대두")
	assert.EqualError(t, err, "please provide barcode or imrptNo")

	_, err = run(t, "--config", cfg, "products", "add", "--name", "두부", "--barcode", "1")
	assert.EqualError(t, err, "product name and raw materials are required")

	_, err = run(t, "--config", cfg, "products", "add", "--name", "두부", "--barcode", "1", "--raw-materials", "대두")
	require.NoError(t, err)
	_, err = run(t, "--config", cfg, "products", "add", "--name", "두부", "--barcode", "1", "--raw-materials", "대두")
	assert.ErrorContains(t, err, "product already exists")
}

func TestLookup_NotFound(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, "--config", cfg, "lookup", "0000000000000")
	assert.EqualError(t, err, "Product not found in any database.")
}

func TestLookup_MissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "lookup", "1")
	assert.Error(t, err)
}
