package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI executes the tool against the store at dbPath and returns stdout
// plus the exit code, mirroring one process invocation per call.
func runCLI(t *testing.T, dbPath string, args ...string) (string, int) {
	t.Helper()
	t.Setenv("EXPENSES_DB_PATH", dbPath)
	t.Setenv("EXPENSES_CONFIG_FILE", "")
	t.Setenv("EXPENSES_STRICT_EXIT", "")

	var out bytes.Buffer
	code := Execute(&out, args)
	return out.String(), code
}

func TestAddThenView(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenses.db")

	out, code := runCLI(t, dbPath, "add", "--amount", "12.50", "--date", "05-03-2024", "--note", "lunch", "--category", "food")
	require.Equal(t, 0, code)
	require.Equal(t, "Added expense id=1, amount=12.50, date=2024-03-05, category=food\n", out)

	out, code = runCLI(t, dbPath, "view")
	require.Equal(t, 0, code)
	require.Contains(t, out, " ID     AMOUNT      CATEGORY        DATE  NOTE\n")
	require.Contains(t, out, "12.50")
	require.Contains(t, out, "food")
	require.Contains(t, out, "2024-03-05")
	require.Contains(t, out, "lunch")
}

func TestAddDefaultsCategory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenses.db")

	out, code := runCLI(t, dbPath, "add", "--amount", "5", "--date", "2024-03-05")
	require.Equal(t, 0, code)
	require.Contains(t, out, "category=uncategorized")
}

func TestViewEmpty(t *testing.T) {
	out, code := runCLI(t, filepath.Join(t.TempDir(), "expenses.db"), "view")
	require.Equal(t, 0, code)
	require.Equal(t, "No expenses found.\n", out)
}

func TestViewOrdering(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenses.db")

	for _, date := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		_, code := runCLI(t, dbPath, "add", "--amount", "1", "--date", date)
		require.Equal(t, 0, code)
	}

	out, code := runCLI(t, dbPath, "view")
	require.Equal(t, 0, code)

	first := strings.Index(out, "2024-01-03")
	second := strings.Index(out, "2024-01-02")
	third := strings.Index(out, "2024-01-01")
	require.True(t, first >= 0 && second > first && third > second,
		"expected dates in descending order, got:\n%s", out)
}

func TestErrorPrintsAndExitsZero(t *testing.T) {
	out, code := runCLI(t, filepath.Join(t.TempDir(), "expenses.db"),
		"add", "--amount", "10", "--date", "not-a-date")
	require.Equal(t, 0, code, "compat mode keeps exit status 0 on failure")
	require.Contains(t, out, "Error: date must be YYYY-MM-DD or DD-MM-YYYY")
}

func TestStrictExitFlag(t *testing.T) {
	_, code := runCLI(t, filepath.Join(t.TempDir(), "expenses.db"),
		"--strict-exit", "add", "--amount", "0", "--date", "2024-03-05")
	require.Equal(t, 1, code)
}

func TestStrictExitEnv(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenses.db")
	t.Setenv("EXPENSES_DB_PATH", dbPath)
	t.Setenv("EXPENSES_CONFIG_FILE", "")
	t.Setenv("EXPENSES_STRICT_EXIT", "true")

	var out bytes.Buffer
	code := Execute(&out, []string{"delete", "123"})
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "Error: expense id not found")
}

func TestUpdateFlow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenses.db")

	_, code := runCLI(t, dbPath, "add", "--amount", "10", "--date", "2024-03-05", "--category", "food")
	require.Equal(t, 0, code)

	out, code := runCLI(t, dbPath, "update", "1", "--amount", "15.75", "--date", "06-03-2024")
	require.Equal(t, 0, code)
	require.Equal(t, "Updated expense id=1\n", out)

	out, _ = runCLI(t, dbPath, "view")
	require.Contains(t, out, "15.75")
	require.Contains(t, out, "2024-03-06")
	require.Contains(t, out, "food")
}

func TestUpdateNoFields(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenses.db")

	_, code := runCLI(t, dbPath, "add", "--amount", "10", "--date", "2024-03-05")
	require.Equal(t, 0, code)

	out, code := runCLI(t, dbPath, "update", "1")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Error: no update fields provided")
}

func TestUpdateUnknownID(t *testing.T) {
	out, _ := runCLI(t, filepath.Join(t.TempDir(), "expenses.db"),
		"update", "42", "--note", "x")
	require.Contains(t, out, "Error: expense id not found")
}

func TestUpdateBadID(t *testing.T) {
	out, _ := runCLI(t, filepath.Join(t.TempDir(), "expenses.db"),
		"update", "abc", "--note", "x")
	require.Contains(t, out, `Error: invalid expense id "abc"`)
}

func TestDeleteFlow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenses.db")

	_, code := runCLI(t, dbPath, "add", "--amount", "10", "--date", "2024-03-05")
	require.Equal(t, 0, code)

	out, code := runCLI(t, dbPath, "delete", "1")
	require.Equal(t, 0, code)
	require.Equal(t, "Deleted expense id=1\n", out)

	out, _ = runCLI(t, dbPath, "view")
	require.Equal(t, "No expenses found.\n", out)

	out, _ = runCLI(t, dbPath, "delete", "1")
	require.Contains(t, out, "Error: expense id not found")
}

func TestSummaryEmpty(t *testing.T) {
	out, code := runCLI(t, filepath.Join(t.TempDir(), "expenses.db"), "summary")
	require.Equal(t, 0, code)
	require.Equal(t, "Total spent: 0.00\n", out)
}

func TestSummaryGrouped(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenses.db")

	for _, args := range [][]string{
		{"add", "--amount", "10", "--date", "2024-03-01", "--category", "food"},
		{"add", "--amount", "20", "--date", "2024-03-15", "--category", "travel"},
		{"add", "--amount", "40", "--date", "2024-04-01", "--category", "food"},
	} {
		_, code := runCLI(t, dbPath, args...)
		require.Equal(t, 0, code)
	}

	iso, code := runCLI(t, dbPath, "summary", "--month", "2024-03", "--group-by", "category")
	require.Equal(t, 0, code)
	require.Contains(t, iso, "Total spent: 30.00")
	require.Contains(t, iso, "By category:")
	require.Contains(t, iso, "travel")
	require.Contains(t, iso, "20.00")

	eu, code := runCLI(t, dbPath, "summary", "--month", "03-2024", "--group-by", "category")
	require.Equal(t, 0, code)
	require.Equal(t, iso, eu, "both month spellings must select the same rows")
}

func TestSummaryInvalidMonth(t *testing.T) {
	out, _ := runCLI(t, filepath.Join(t.TempDir(), "expenses.db"),
		"summary", "--month", "2024/03")
	require.Contains(t, out, "Error: month must be YYYY-MM or MM-YYYY")
}

func TestSummaryInvalidGroupBy(t *testing.T) {
	out, _ := runCLI(t, filepath.Join(t.TempDir(), "expenses.db"),
		"summary", "--group-by", "note")
	require.Contains(t, out, "Error: invalid group-by")
}
