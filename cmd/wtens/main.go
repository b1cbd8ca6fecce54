// Package main provides the wtens CLI, a small driver for the tensor library.
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"golang.org/x/exp/rand"

	"github.com/born-ml/wtens/backend/cpu"
	"github.com/born-ml/wtens/internal/tensor"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("wtens: ")

	cfg, err := ParseConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if cfg.Command == "version" {
		fmt.Printf("wtens %s\n", version)
		return
	}

	if err := runWith(cfg); err != nil {
		log.Fatal(err)
	}
}

// runWith runs the configured command on the configured backend.
func runWith(cfg *Config) error {
	if cfg.Backend == backendReference {
		return run(tensor.NewMockBackend(), cfg)
	}
	return run(cpu.New(), cfg)
}

func run[B tensor.Backend](b B, cfg *Config) error {
	log.Printf("backend %s, n=%d, seed=%d", b.Name(), cfg.Size, cfg.Seed)
	src := rand.NewSource(cfg.Seed)
	switch cfg.Command {
	case "eigen":
		return runEigen(b, cfg.Size, src)
	case "contract":
		return runContract(b, cfg.Size, src)
	}
	return nil
}

// runEigen decomposes a random symmetric matrix and reports how well
// V·diag(λ)·Vᵀ reproduces it.
func runEigen[B tensor.Backend](b B, n int, src rand.Source) error {
	a := tensor.MustNew[float64, tensor.R2](b, n, n)
	a.SetRandomFrom(src)
	sym := tensor.MustNew[float64, tensor.R2](b, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sym.Set((a.At(i, j)+a.At(j, i))/2, i, j)
		}
	}

	values, vectors, err := sym.EigenDecompose()
	if err != nil {
		return err
	}

	scaled := vectors.Clone()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			scaled.Set(scaled.At(i, j)*values.At(j), i, j)
		}
	}
	rebuilt, err := tensor.Contract[tensor.R2](scaled, vectors, 1, 1)
	if err != nil {
		return err
	}

	maxErr := 0.0
	for i, v := range rebuilt.Data() {
		maxErr = math.Max(maxErr, math.Abs(v-sym.Data()[i]))
	}

	fmt.Println("matrix:      ", sym)
	fmt.Println("eigenvalues: ", values)
	fmt.Println("eigenvectors:", vectors)
	fmt.Printf("max reconstruction error: %.3g\n", maxErr)
	return nil
}

// runContract contracts a random (n, n, n) tensor with a random (n, n)
// matrix over the last axis of the first and the first axis of the second.
func runContract[B tensor.Backend](b B, n int, src rand.Source) error {
	a := tensor.MustNew[float64, tensor.R3](b, n, n, n)
	a.SetRandomFrom(src)
	m := tensor.MustNew[float64, tensor.R2](b, n, n)
	m.SetRandomFrom(src)

	c, err := tensor.Contract[tensor.R3](a, m, 2, 0)
	if err != nil {
		return err
	}
	fmt.Println(c.Describe())
	fmt.Println(c)
	return nil
}
