package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"quaternion-go/internal/mathutil"
)

func main() {
	q1Spec := flag.String("q1", "1,1,1,1", "First operand as w,i,j,k")
	q2Spec := flag.String("q2", "0,0,0,0", "Second operand as w,i,j,k")
	vSpec := flag.String("v", "1,0,0", "Vector to rotate as x,y,z")
	flag.Parse()

	q1, err := parseQuaternion(*q1Spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -q1: %v\n", err)
		os.Exit(1)
	}
	q2, err := parseQuaternion(*q2Spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -q2: %v\n", err)
		os.Exit(1)
	}
	v, err := parseVector(*vSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -v: %v\n", err)
		os.Exit(1)
	}

	printDemo(os.Stdout, q1, q2, v)
}

func printDemo(w io.Writer, q1, q2 mathutil.Quaternion, v mathutil.Vector3) {
	fmt.Fprintf(w, "q1: %v\n", q1)
	fmt.Fprintf(w, "q2: %v\n", q2)
	fmt.Fprintf(w, "q1 to vector: %v\n", q1.ToVector3())
	fmt.Fprintf(w, "q1 + q2 = %v\n", mathutil.Add(q1, q2))
	fmt.Fprintf(w, "q1 * q2 = %v\n", mathutil.Multiply(q1, q2))
	fmt.Fprintf(w, "q1 - q2 = %v\n", mathutil.Subtract(q1, q2))
	fmt.Fprintf(w, "q1 / q2 = %v\n", mathutil.Divide(q1, q2))
	fmt.Fprintf(w, "q1 · q2 = %v\n", mathutil.ScalarProduct(q1, q2))
	fmt.Fprintf(w, "Even product of q1, q2: %v\n", mathutil.EvenProduct(q1, q2))
	fmt.Fprintf(w, "Conjugate of q1: %v\n", q1.Conjugate())
	fmt.Fprintf(w, "Sign number of q1: %v\n", q1.Sgn())
	fmt.Fprintf(w, "Absolute value of q1: %v\n", q1.Abs())
	fmt.Fprintf(w, "Inverse of q1: %v\n", q1.Inverse())
	fmt.Fprintf(w, "Argument of q1: %v\n", q1.Arg())
	fmt.Fprintf(w, "Rotating vector %v by q1: %v\n", v, q1.RotateVector(v))
	fmt.Fprintf(w, "Euler angles of q1: %v\n", q1.ToEulerAngles())
}

func parseQuaternion(s string) (mathutil.Quaternion, error) {
	c, err := parseFloats(s, 4)
	if err != nil {
		return mathutil.Quaternion{}, fmt.Errorf("want w,i,j,k: %w", err)
	}
	return mathutil.NewQuaternion(c[0], c[1], c[2], c[3]), nil
}

func parseVector(s string) (mathutil.Vector3, error) {
	c, err := parseFloats(s, 3)
	if err != nil {
		return mathutil.Vector3{}, fmt.Errorf("want x,y,z: %w", err)
	}
	return mathutil.NewVector3(c[0], c[1], c[2]), nil
}

// parseFloats parses exactly n comma-separated floats.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("got %d values in %q", len(parts), s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d of %q: %w", i+1, s, err)
		}
		out[i] = v
	}
	return out, nil
}
