package testdata

// @raad
type Color uint8

// @raad
type Shape interface {
	Area() float64
}

// @raad
type Alias = Color

// @raad frobnicate=yes
type Bad struct {
	A uint8
}
