package sed_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/sed"
)

func ExampleCompute() {
	r := sed.Compute(45)
	fmt.Printf("points=%d first=%.2f last=%.4f\n", len(r.LogNu), r.LogNu[0], r.LogNu[len(r.LogNu)-1])
	fmt.Printf("log Lbol check=%.2f\n", math.Log10(r.Lbol))
	fmt.Printf("alpha_OX gradient=%.4f L2500=%.4f\n", r.AlphaOXGradient, r.AlphaOXL)

	// Output:
	// points=286 first=14.25 last=20.4985
	// log Lbol check=45.00
	// alpha_OX gradient=1.3606 L2500=-1.3612
}

func ExampleNormalize() {
	n := sed.Normalize(43)
	fmt.Printf("A_X=%.6f A_O=%.4f\n", n.AX, n.AO)

	// Output:
	// A_X=0.008229 A_O=0.9236
}
