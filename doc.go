// Package matbench measures how much a parallel dense matrix multiplication
// gains over the naive sequential triple loop on the same inputs.
//
// What is inside?
//
//	matrix/        square int64 Dense storage, accessors and operand validators
//	generator/     seedable random matrix construction (values in [0, bound))
//	parallel/      fork-join helpers: For/ForRange chunking and a bounded worker Pool
//	multiply/      Sequential (i→j→k) and Parallel (rows, columns, inner, tiled)
//	cpuinfo/       logical CPUs and SIMD extensions of the host
//	bench/         one timed run and the two-line report
//	cmd/matbench   the command-line driver
//
// Quick start:
//
//	rep, err := bench.Run(bench.Config{N: 512, Seed: 7})
//	if err != nil {
//		log.Fatal(err)
//	}
//	rep.WriteTo(os.Stdout)
//	// Time by Sequential : 0.41s
//	// Time by Parallel : 0.07s
//
// Every strategy produces a result identical to the sequential one: values
// are int64, so addition order never changes the product.
package matbench
