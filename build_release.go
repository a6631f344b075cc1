//go:build !debug

package monitoring

const debugBuild = false
