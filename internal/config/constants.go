package config

// Version is the current s0 core version.
var Version = "0.1.0"

// S0TagPrefix is the YAML tag handle shared by every S₀ IR tag.
const S0TagPrefix = "tag:swanson-lang.org,2016:s0/"

// SwansonTagPrefix is the YAML tag handle used by the test harness's
// own document tags (successful-parse / invalid-parse).
const SwansonTagPrefix = "tag:swanson-lang.org,2016:swanson/"

// Entity type tags.
const (
	AnyTag     = S0TagPrefix + "any"
	ClosureTag = S0TagPrefix + "closure"
	MethodTag  = S0TagPrefix + "method"
	ObjectTag  = S0TagPrefix + "object"
)

// Statement tags.
const (
	CreateAtomTag    = S0TagPrefix + "create-atom"
	CreateClosureTag = S0TagPrefix + "create-closure"
	CreateLiteralTag = S0TagPrefix + "create-literal"
	CreateMethodTag  = S0TagPrefix + "create-method"
)

// Invocation tags.
const (
	InvokeClosureTag = S0TagPrefix + "invoke-closure"
	InvokeMethodTag  = S0TagPrefix + "invoke-method"
)

// Test harness document tags.
const (
	SuccessfulParseTag = SwansonTagPrefix + "successful-parse"
	InvalidParseTag    = SwansonTagPrefix + "invalid-parse"
)

// ModuleBranchName is the single branch every loaded module is wrapped
// in.
const ModuleBranchName = "module"

// TestFileExt is the extension the test harness walks directories for.
const TestFileExt = ".yaml"

// HasTestFileExt returns true if path ends with the recognized test
// fixture extension.
func HasTestFileExt(path string) bool {
	return len(path) >= len(TestFileExt) && path[len(path)-len(TestFileExt):] == TestFileExt
}
