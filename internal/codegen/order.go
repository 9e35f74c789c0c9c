package codegen

import "github.com/bend-n/raad-codegen/internal/analyzer"

// Order is a byte order strategy for the field walk. The walk is the same
// for every order; only the names it emits differ.
type Order struct {
	Name   string // human readable, used in doc comments
	Suffix string // procedure and contract suffix: LE, BE
}

var (
	LittleEndian = Order{Name: "little-endian", Suffix: "LE"}
	BigEndian    = Order{Name: "big-endian", Suffix: "BE"}
)

// Orders lists the strategies every record is generated for, in output order
var Orders = []Order{LittleEndian, BigEndian}

// Expr returns the runtime byte order value, e.g. wire.LE
func (o Order) Expr(runtime string) string {
	return runtime + "." + o.Suffix
}

// Writer returns the contract a type parameter needs to be written
func (o Order) Writer(runtime string) analyzer.Contract {
	return func(string) string {
		return runtime + ".Writer" + o.Suffix
	}
}

// Reader returns the contract a type parameter needs to be read. Readers
// construct their own type, so the contract refers to the parameter.
func (o Order) Reader(runtime string) analyzer.Contract {
	return func(param string) string {
		return runtime + ".Reader" + o.Suffix + "[" + param + "]"
	}
}
