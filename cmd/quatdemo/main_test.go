package main

import (
	"bytes"
	"strings"
	"testing"

	"quaternion-go/internal/mathutil"
)

func TestPrintDemo(t *testing.T) {
	var buf bytes.Buffer
	printDemo(&buf,
		mathutil.NewQuaternion(1, 1, 1, 1),
		mathutil.NewQuaternion(0, 0, 0, 0),
		mathutil.NewVector3(1, 0, 0))
	out := buf.String()

	for _, want := range []string{
		"q1: 1+1i+1j+1k\n",
		"q1 to vector: (1, 1, 1)\n",
		"q1 + q2 = 1+1i+1j+1k\n",
		"q1 * q2 = 0+0i+0j+0k\n",
		"q1 - q2 = 1+1i+1j+1k\n",
		"q1 / q2 = 0+0i+0j+0k\n",
		"Conjugate of q1: 1-1i-1j-1k\n",
		"Sign number of q1: 0.5+0.5i+0.5j+0.5k\n",
		"Absolute value of q1: 2\n",
		"Inverse of q1: 0.25-0.25i-0.25j-0.25k\n",
		"Rotating vector (1, 0, 0) by q1: (1, 1, -1)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestParseQuaternion(t *testing.T) {
	q, err := parseQuaternion("0.5,-1,2,3e1")
	if err != nil {
		t.Fatal(err)
	}
	if q != mathutil.NewQuaternion(0.5, -1, 2, 30) {
		t.Fatalf("parseQuaternion = %v", q)
	}
	for _, bad := range []string{"1,2,3", "1,1,1,1,9", "1,1,1,x", ""} {
		if _, err := parseQuaternion(bad); err == nil {
			t.Errorf("parseQuaternion(%q) should fail", bad)
		}
	}
}

func TestParseVector(t *testing.T) {
	v, err := parseVector(" 1, -2.5 ,3e2")
	if err != nil {
		t.Fatal(err)
	}
	if v != mathutil.NewVector3(1, -2.5, 300) {
		t.Fatalf("parseVector = %v", v)
	}
	for _, bad := range []string{"1,0", "1,0,0,0", "1,,0"} {
		if _, err := parseVector(bad); err == nil {
			t.Errorf("parseVector(%q) should fail", bad)
		}
	}
}
