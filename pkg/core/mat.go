package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mat3 is a row-major 3x3 matrix
type Mat3 struct {
	Rows [3]Vec3
}

// Mat4 is a row-major 4x4 matrix
type Mat4 struct {
	Rows [4]Vec4
}

// NewMat3 builds a matrix from its rows
func NewMat3(r0, r1, r2 Vec3) Mat3 {
	return Mat3{Rows: [3]Vec3{r0, r1, r2}}
}

// Identity3 returns the 3x3 identity matrix
func Identity3() Mat3 {
	return NewMat3(NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1))
}

func mat3FromArray(a [3][3]float64) Mat3 {
	return NewMat3(vec3FromArray(a[0]), vec3FromArray(a[1]), vec3FromArray(a[2]))
}

func (m Mat3) dense() *mat.Dense {
	data := make([]float64, 0, 9)
	for _, row := range m.Rows {
		a := row.array()
		data = append(data, a[:]...)
	}
	return mat.NewDense(3, 3, data)
}

func mat3FromDense(d mat.Matrix) Mat3 {
	var a [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = d.At(i, j)
		}
	}
	return mat3FromArray(a)
}

// invert inverts a square gonum matrix. A zero determinant, or one gonum
// reports as too ill-conditioned to invert, is ErrSingularMatrix.
func invert(d *mat.Dense, name string) (*mat.Dense, error) {
	det := mat.Det(d)
	if det == 0 || math.IsNaN(det) {
		return nil, fmt.Errorf("invert %s (det=%g): %w", name, det, ErrSingularMatrix)
	}

	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		return nil, fmt.Errorf("invert %s: %v: %w", name, err, ErrSingularMatrix)
	}
	return &inv, nil
}

// Row returns row i
func (m Mat3) Row(i int) (Vec3, error) {
	if i < 0 || i >= 3 {
		return Vec3{}, fmt.Errorf("mat3 row %d: %w", i, ErrIndexOutOfRange)
	}
	return m.Rows[i], nil
}

// At returns the element at row i, column j
func (m Mat3) At(i, j int) (float64, error) {
	row, err := m.Row(i)
	if err != nil {
		return 0, err
	}
	return row.At(j)
}

// Negate negates every element
func (m Mat3) Negate() Mat3 {
	return NewMat3(m.Rows[0].Negate(), m.Rows[1].Negate(), m.Rows[2].Negate())
}

// Multiply returns the matrix product m * other
func (m Mat3) Multiply(other Mat3) Mat3 {
	var product mat.Dense
	product.Mul(m.dense(), other.dense())
	return mat3FromDense(&product)
}

// MultiplyVec returns the matrix-vector product m * v
func (m Mat3) MultiplyVec(v Vec3) Vec3 {
	return NewVec3(m.Rows[0].Dot(v), m.Rows[1].Dot(v), m.Rows[2].Dot(v))
}

// ScaleColumns multiplies column j by v's j-th component, i.e. m * diag(v)
func (m Mat3) ScaleColumns(v Vec3) Mat3 {
	return NewMat3(m.Rows[0].MultiplyVec(v), m.Rows[1].MultiplyVec(v), m.Rows[2].MultiplyVec(v))
}

// Transpose swaps rows and columns
func (m Mat3) Transpose() Mat3 {
	return mat3FromDense(m.dense().T())
}

// Determinant computes the determinant through an LU factorization
func (m Mat3) Determinant() float64 {
	return mat.Det(m.dense())
}

// Inverse returns the inverse, or ErrSingularMatrix
func (m Mat3) Inverse() (Mat3, error) {
	inv, err := invert(m.dense(), "mat3")
	if err != nil {
		return Mat3{}, err
	}
	return mat3FromDense(inv), nil
}

// InverseTranspose is the normal-transform matrix (m^-1)^T
func (m Mat3) InverseTranspose() (Mat3, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Mat3{}, err
	}
	return inv.Transpose(), nil
}

// NewMat4 builds a matrix from its rows
func NewMat4(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{Rows: [4]Vec4{r0, r1, r2, r3}}
}

// Identity4 returns the 4x4 identity matrix
func Identity4() Mat4 {
	return NewMat4(
		NewVec4(1, 0, 0, 0),
		NewVec4(0, 1, 0, 0),
		NewVec4(0, 0, 1, 0),
		NewVec4(0, 0, 0, 1),
	)
}

func (m Mat4) array() [4][4]float64 {
	return [4][4]float64{m.Rows[0].array(), m.Rows[1].array(), m.Rows[2].array(), m.Rows[3].array()}
}

func mat4FromArray(a [4][4]float64) Mat4 {
	return NewMat4(vec4FromArray(a[0]), vec4FromArray(a[1]), vec4FromArray(a[2]), vec4FromArray(a[3]))
}

// dense copies the matrix into a gonum matrix
func (m Mat4) dense() *mat.Dense {
	data := make([]float64, 0, 16)
	for _, row := range m.Rows {
		a := row.array()
		data = append(data, a[:]...)
	}
	return mat.NewDense(4, 4, data)
}

func mat4FromDense(d mat.Matrix) Mat4 {
	var a [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = d.At(i, j)
		}
	}
	return mat4FromArray(a)
}

// Row returns row i
func (m Mat4) Row(i int) (Vec4, error) {
	if i < 0 || i >= 4 {
		return Vec4{}, fmt.Errorf("mat4 row %d: %w", i, ErrIndexOutOfRange)
	}
	return m.Rows[i], nil
}

// At returns the element at row i, column j
func (m Mat4) At(i, j int) (float64, error) {
	row, err := m.Row(i)
	if err != nil {
		return 0, err
	}
	return row.At(j)
}

// Negate negates every element
func (m Mat4) Negate() Mat4 {
	return NewMat4(m.Rows[0].Negate(), m.Rows[1].Negate(), m.Rows[2].Negate(), m.Rows[3].Negate())
}

// Multiply returns the matrix product m * other
func (m Mat4) Multiply(other Mat4) Mat4 {
	var product mat.Dense
	product.Mul(m.dense(), other.dense())
	return mat4FromDense(&product)
}

// MultiplyVec returns the matrix-vector product m * v
func (m Mat4) MultiplyVec(v Vec4) Vec4 {
	return NewVec4(m.Rows[0].Dot(v), m.Rows[1].Dot(v), m.Rows[2].Dot(v), m.Rows[3].Dot(v))
}

// ScaleColumns multiplies column j by v's j-th component, i.e. m * diag(v)
func (m Mat4) ScaleColumns(v Vec4) Mat4 {
	a, s := m.array(), v.array()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] *= s[j]
		}
	}
	return mat4FromArray(a)
}

// Transpose swaps rows and columns
func (m Mat4) Transpose() Mat4 {
	return mat4FromDense(m.dense().T())
}

// Determinant computes the determinant through an LU factorization
func (m Mat4) Determinant() float64 {
	return mat.Det(m.dense())
}

// Inverse returns the inverse, or ErrSingularMatrix
func (m Mat4) Inverse() (Mat4, error) {
	inv, err := invert(m.dense(), "mat4")
	if err != nil {
		return Mat4{}, err
	}
	return mat4FromDense(inv), nil
}

// InverseTranspose is the normal-transform matrix (m^-1)^T
func (m Mat4) InverseTranspose() (Mat4, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Mat4{}, err
	}
	return inv.Transpose(), nil
}
