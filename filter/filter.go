// Package filter compiles expr expressions into predicates over media items,
// so CLI users can narrow search and trending results, e.g.:
//
//	Media.Rating == "g" and contains(Media.Title, "cat")
//	isTrending() and daysSinceImport() < 365
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/gifseek/giphy"
)

// apiDatetime is the layout the API uses for import/trending timestamps.
const apiDatetime = "2006-01-02 15:04:05"

// CompilationError indicates a filter expression that could not be compiled.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

// Error implements the error interface
func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid filter %q: %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid filter %q: %s", e.Expression, e.Reason)
}

// Unwrap returns the underlying compile error.
func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Filter is a compiled, reusable media predicate. Filters are safe for
// concurrent evaluation.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile parses and compiles a filter expression.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(createHelperFunctions()),
		expr.AllowUndefinedVariables(), // Media fields resolve at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Evaluate checks whether a single media item matches the filter. Items that
// make the expression fail at run time are treated as non-matching.
func (f *Filter) Evaluate(media giphy.Media) bool {
	env := createRuntimeEnvironment(media)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// AsBool() during compilation guarantees the assertion.
	return result.(bool)
}

// Apply returns the items matching the filter, preserving input order.
func (f *Filter) Apply(items []giphy.Media) []giphy.Media {
	var matched []giphy.Media
	for _, item := range items {
		if f.Evaluate(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// createHelperFunctions creates the static helper set used for compilation.
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds the media-independent helpers to the environment.
func addHelperFunctions(env map[string]any) {
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper

	// Date helpers
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	env["now"] = time.Now
}

// createRuntimeEnvironment builds the evaluation environment for one item.
func createRuntimeEnvironment(media giphy.Media) map[string]any {
	env := make(map[string]any, 24)
	addHelperFunctions(env)

	env["Media"] = media

	env["hasRendition"] = func(name string) bool {
		_, ok := media.Rendition(name)
		return ok
	}
	env["byUser"] = func(username string) bool {
		return strings.EqualFold(media.Username, username)
	}
	env["isTrending"] = func() bool {
		return !parseAPITime(media.TrendingDatetime).IsZero()
	}
	env["trendedAfter"] = func(dateStr string) bool {
		trended := parseAPITime(media.TrendingDatetime)
		if trended.IsZero() {
			return false
		}
		cutoff, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return false
		}
		return trended.After(cutoff)
	}
	env["daysSinceImport"] = func() int {
		imported := parseAPITime(media.ImportDatetime)
		if imported.IsZero() {
			return -1
		}
		return int(time.Since(imported).Hours() / 24)
	}

	return env
}

// parseAPITime parses an API timestamp. The API uses a zeroed placeholder
// ("0000-00-00 00:00:00") for items that never trended.
func parseAPITime(s string) time.Time {
	if s == "" || strings.HasPrefix(s, "0000") {
		return time.Time{}
	}
	t, err := time.Parse(apiDatetime, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
