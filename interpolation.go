/*
Package interpolation provides pure Go implementations of polynomial
interpolation and fitting over finite sets of sample points with distinct
abscissas: Neville's algorithm and its difference-tracking variant, and
recovery of explicit coefficients by iterative deflation or through the
barycentric Lagrange form, at native float or arbitrary precision.
*/
package interpolation
