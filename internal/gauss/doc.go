// Package gauss builds Gauss quadrature rules.
//
// [GolubWelsch] turns any three-term recursion into a rule by diagonalizing
// the symmetric tridiagonal Jacobi matrix: the nodes are its eigenvalues and
// the weights are mu0 times the squared first components of its unit
// eigenvectors. It serves every classical family and caller-supplied
// recursions alike.
//
// [Chebyshev] evaluates the closed forms for the two Chebyshev kinds, which
// avoids the eigensolve altogether.
//
// # Example
//
//	rec, _ := recursion.Table(quad.Family{Kind: quad.Legendre}, 5)
//	rule, _ := gauss.GolubWelsch(rec, tridiag.NewQL(tridiag.DefaultMaxIter))
//	area := rule.Integrate(math.Exp)
package gauss
