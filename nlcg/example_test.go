package nlcg_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlopt/nlcg"
	"github.com/katalvlaran/lvlopt/optfunc"
)

// ExampleMinimize solves the sphere bowl with the default Polak–Ribière
// variant; x is mutated in place.
func ExampleMinimize() {
	x := []float64{3, -4}

	res, err := nlcg.Minimize(optfunc.Sphere{}, x, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("status=%v x=(%.4f, %.4f)\n", res.Status, x[0], x[1])
	// Output:
	// status=GradientThreshold x=(0.0000, 0.0000)
}

// ExampleMinimize_fletcherReeves runs the acceptance quadratic with the
// Fletcher–Reeves coefficient instead of the default.
func ExampleMinimize_fletcherReeves() {
	rng := rand.New(rand.NewSource(100))
	q := optfunc.NewRandomQuadratic(16, rng)
	x := optfunc.UniformStart(rng, q.Dim(), -1, 1)

	opts := nlcg.DefaultOptions()
	opts.MaxIterations = 1000
	opts.Variant = nlcg.FletcherReeves

	_, err := nlcg.Minimize(q, x, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("solved=%t\n", q.Residual(x) < 1e-4)
	// Output:
	// solved=true
}
