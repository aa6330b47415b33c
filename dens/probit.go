package dens

import (
	"math"

	"github.com/MatthewZhang473/gpmcmc/utils"
)

var (
	cs = []float64{
		0.00048204, -0.00142906, 0.0013200243174, 0.0009461589032,
		-0.0045563339802, 0.00556964649138, 0.00125993961762116,
		-0.01621575378835404, 0.02629651521057465, -0.001829764677455021,
		-0.09439510239319526, 0.28613578213673563, 1.0, 1.0}
	rs = []float64{
		1.2753666447299659525, 5.019049726784267463450, 6.1602098531096305441,
		7.409740605964741794425, 2.9788656263939928886}
	qs = []float64{
		2.260528520767326969592, 9.3960340162350541504,
		12.048951927855129036034, 17.081440747466004316,
		9.608965327192787870698, 3.3690752069827527677}
)

// logPhi evaluates log Phi(z) without underflowing: a Taylor series near
// zero, an asymptotic continued-fraction expansion in the far left tail,
// and log(NormalCdf) in between.
func logPhi(z float64) float64 {
	if z*z < 0.0492 {
		coef := -z / (math.Sqrt2 * math.SqrtPi)
		val := 0.0
		for _, c := range cs {
			val = coef * (c + val)
		}
		return -2*val - math.Ln2
	} else if z < -11.3137 {
		num := 0.5641895835477550741
		for _, r := range rs {
			num = -z*num/math.Sqrt2 + r
		}
		den := 1.0
		for _, q := range qs {
			den = -z*den/math.Sqrt2 + q
		}
		return math.Log(num/(2*den)) - (z*z)/2
	}
	return math.Log(utils.NormalCdf(z))
}
