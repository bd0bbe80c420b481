package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext returns the evaluation context for puzzle attributes. It
// has no variables, only string helpers for writing grids compactly.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"split":     stdlib.SplitFunc,
			"join":      stdlib.JoinFunc,
			"concat":    stdlib.ConcatFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}

var stringList = cty.List(cty.String)

// decodeStringList evaluates expr and decodes it as a list of strings. A
// null value, which gohcl substitutes for an absent optional attribute,
// decodes to nil.
func decodeStringList(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%s: value must be known", expr.Range())
	}

	converted, err := convert.Convert(val, stringList)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot convert %s to %s: %w",
			expr.Range(), val.Type().FriendlyName(), stringList.FriendlyName(), err)
	}

	var out []string
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", expr.Range(), err)
	}
	return out, nil
}
