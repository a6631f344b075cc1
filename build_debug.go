//go:build debug

package monitoring

const debugBuild = true
