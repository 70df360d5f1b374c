//go:build gpu

package main

// Building with -tags gpu renders through the gg GPU accelerator when a
// Vulkan, Metal or DX12 device is available, and falls back to the CPU
// rasterizer otherwise.
import _ "github.com/gogpu/gg/gpu"
