// genreduceops emits reduce/ops_gen.go: one named wrapper per
// (element type, operator, algorithm) triple, each binding a fold.Op
// constructor into one of the four generic ToAll* entry points. It exists
// so the public API matches the reduce_<type>_<op>_to_all_<algo> naming
// convention without hand-maintaining the cross product; run it with
// `go generate ./reduce` after changing the type or operator table below.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
)

// opSpec names one operator and the algorithms it is instantiated over for
// a given type. Every type gets every algorithm for every operator its
// element type supports (fold.Integer for AND/OR/XOR, fold.Numeric for
// MIN/MAX, fold.Addable for SUM/PROD). Only the element types in the types
// table below (int32, int64, float64, complex128) get named wrappers; other
// widths such as int16, float32 or complex64 have none and are reached
// through the generic ToAll* functions with a fold constructor.
type opSpec struct {
	op    string
	algos []string
}

type typeSpec struct {
	goType string // Go type parameter
	label  string // exported-name prefix, e.g. "Int32"
	wire   string // reduce_<wire>_ name fragment
	ops    []opSpec
}

var opLabel = map[string]string{
	"sum": "Sum", "prod": "Prod", "min": "Min", "max": "Max",
	"and": "And", "or": "Or", "xor": "Xor",
}

var allAlgos = []string{"Linear", "Binomial", "RecDbl", "Rabenseifner"}

var integerOps = []opSpec{
	{"sum", allAlgos}, {"prod", allAlgos}, {"min", allAlgos}, {"max", allAlgos},
	{"and", allAlgos}, {"or", allAlgos}, {"xor", allAlgos},
}

var floatOps = []opSpec{
	{"sum", allAlgos}, {"prod", allAlgos}, {"min", allAlgos}, {"max", allAlgos},
}

var complexOps = []opSpec{
	{"sum", allAlgos}, {"prod", allAlgos},
}

var types = []typeSpec{
	{goType: "int32", label: "Int32", wire: "int32", ops: integerOps},
	{goType: "int64", label: "Int64", wire: "int64", ops: integerOps},
	{goType: "float64", label: "Float64", wire: "double", ops: floatOps},
	{goType: "complex128", label: "Complex128", wire: "dcomplex", ops: complexOps},
}

func main() {
	var buf bytes.Buffer
	fmt.Fprint(&buf, `// Code generated from file "cmd/genreduceops/main.go"; DO NOT EDIT.

package reduce

import (
	"github.com/xtaci/shreduce/internal/activeset"
	"github.com/xtaci/shreduce/internal/fold"
	"github.com/xtaci/shreduce/pgas"
)

`)

	for _, ts := range types {
		for _, spec := range ts.ops {
			for _, algo := range spec.algos {
				name := ts.label + opLabel[spec.op] + "ToAll" + algo
				fmt.Fprintf(&buf, "// %s is reduce_%s_%s_to_all_%s.\n", name, ts.wire, spec.op, algoWire(algo))
				fmt.Fprintf(&buf, "func %s(fab pgas.Fabric, as activeset.Set, dest, source pgas.SymBuf[%s], nreduce int, pWrk pgas.SymBuf[%s], pSync pgas.SymBuf[int64]) error {\n",
					name, ts.goType, ts.goType)
				fmt.Fprintf(&buf, "\treturn ToAll%s(fab, as, dest, source, nreduce, pWrk, pSync, fold.%s[%s]())\n", algo, opLabel[spec.op], ts.goType)
				fmt.Fprintf(&buf, "}\n\n")
			}
		}
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("genreduceops: formatting output: %v", err)
	}
	// go generate runs this command with the working directory set to the
	// package containing the go:generate directive, i.e. reduce/.
	if err := os.WriteFile("ops_gen.go", out, 0644); err != nil {
		log.Fatalf("genreduceops: writing ops_gen.go: %v", err)
	}
}

func algoWire(algo string) string {
	switch algo {
	case "RecDbl":
		return "rec_dbl"
	case "Rabenseifner":
		return "rabenseifner"
	default:
		return toLower(algo)
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
