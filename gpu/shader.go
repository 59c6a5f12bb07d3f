package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/metaball.wgsl
var metaballShaderWGSL string

// ShaderSource returns the WGSL source of the metaball compositing shader,
// for hosts that compile shaders through their own pipeline.
func ShaderSource() string {
	return metaballShaderWGSL
}

// CompileShader compiles the metaball WGSL shader to SPIR-V uint32 words,
// validating it in the process.
func CompileShader() ([]uint32, error) {
	return compileWGSL(metaballShaderWGSL)
}

// compileWGSL compiles WGSL source to a SPIR-V uint32 slice.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
