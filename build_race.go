//go:build race

package monitoring

const raceBuild = true
