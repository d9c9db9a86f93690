package deps

// Fixed category names for the dependency report.
const (
	CategoryStandardLib   = "standard_lib"
	CategoryDataScience   = "data_science"
	CategoryMLFrameworks  = "ml_frameworks"
	CategoryVisualization = "visualization"
)

// category pairs a report bucket with its static membership predicate.
// Predicates are independent: an identifier may satisfy several, though in
// the current sets none overlap.
type category struct {
	name    string
	matches func(name string) bool
}

var categories = []category{
	{CategoryStandardLib, setMembership(standardLibModules)},
	{CategoryDataScience, setMembership(dataScienceLibraries)},
	{CategoryMLFrameworks, setMembership(mlFrameworkLibraries)},
	{CategoryVisualization, setMembership(visualizationLibraries)},
}

func setMembership(set map[string]bool) func(string) bool {
	return func(name string) bool { return set[name] }
}

// standardLibModules holds the commonly imported Python standard library
// modules. The set only needs to cover what shows up in notebooks; it is a
// classification aid, not an exhaustive index.
var standardLibModules = map[string]bool{
	"__future__":  true,
	"abc":         true,
	"argparse":    true,
	"ast":         true,
	"asyncio":     true,
	"collections": true,
	"copy":        true,
	"csv":         true,
	"dataclasses": true,
	"datetime":    true,
	"functools":   true,
	"glob":        true,
	"io":          true,
	"itertools":   true,
	"json":        true,
	"logging":     true,
	"math":        true,
	"os":          true,
	"pathlib":     true,
	"pickle":      true,
	"random":      true,
	"re":          true,
	"shutil":      true,
	"string":      true,
	"subprocess":  true,
	"sys":         true,
	"time":        true,
	"typing":      true,
	"unittest":    true,
	"urllib":      true,
	"warnings":    true,
}

var dataScienceLibraries = map[string]bool{
	"dask":        true,
	"numpy":       true,
	"pandas":      true,
	"polars":      true,
	"scipy":       true,
	"statsmodels": true,
}

var mlFrameworkLibraries = map[string]bool{
	"catboost":     true,
	"jax":          true,
	"keras":        true,
	"lightgbm":     true,
	"sklearn":      true,
	"tensorflow":   true,
	"torch":        true,
	"transformers": true,
	"xgboost":      true,
}

var visualizationLibraries = map[string]bool{
	"altair":     true,
	"bokeh":      true,
	"matplotlib": true,
	"plotly":     true,
	"seaborn":    true,
}
