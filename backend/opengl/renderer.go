// Package opengl renders imui draw data with OpenGL 4.1 and feeds GLFW
// events into an imui.Input.
package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/imui"
)

// Renderer executes imui.DrawData with OpenGL.
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	ebo          uint32
	projLoc      int32
	texLoc       int32
	useTexLoc    int32
	isRGBATexLoc int32 // Uniform for RGBA vs alpha-only texture mode
	width        int
	height       int

	format   imui.VertexFormat
	clipPos  bool
	font     *imui.Font
	textures []uint32 // textures created by the renderer

	// Track which textures are RGBA (vs alpha-only)
	rgbaTextures map[imui.TextureID]bool
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source
// Supports two texture modes:
// - Alpha-only (R-channel): font atlases
// - RGBA: full color textures such as skins
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (useTexture) {
        vec4 texColor = texture(fontTexture, TexCoord);
        if (isRGBATexture) {
            FragColor = texColor * Color;
        } else {
            // Alpha-only: R channel is alpha, use vertex color for RGB
            FragColor = vec4(Color.rgb, Color.a * texColor.r);
        }
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// attribute locations used by the shaders
const (
	locPos   = 0
	locUV    = 1
	locColor = 2
)

// NewRenderer creates a renderer for draw data in format. The format must
// contain a position (screen or clip space) and may contain UV and color
// with float components or a packed uint1 color.
func NewRenderer(width, height int, format imui.VertexFormat) (*Renderer, error) {
	r := &Renderer{
		width:        width,
		height:       height,
		format:       format,
		rgbaTextures: make(map[imui.TextureID]bool),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	if err := r.setupAttributes(); err != nil {
		gl.BindVertexArray(0)
		r.Delete()
		return nil, err
	}
	gl.BindVertexArray(0)

	r.font = createBitmapFont()
	r.textures = append(r.textures, uint32(r.font.Texture()))
	return r, nil
}

// setupAttributes maps the vertex format onto the shader inputs.
func (r *Renderer) setupAttributes() error {
	stride := int32(r.format.Stride())
	var offset uintptr
	hasPos := false
	for _, e := range r.format {
		size := e.Type.Size()
		n := int32(e.Type.Components())
		switch {
		case e.Semantic == imui.SemanticScreenPos || e.Semantic == imui.SemanticClipPos:
			if e.Type > imui.Float4 {
				return fmt.Errorf("opengl: position must be float, got %s", e)
			}
			gl.VertexAttribPointerWithOffset(locPos, min(n, 2), gl.FLOAT, false, stride, offset)
			gl.EnableVertexAttribArray(locPos)
			r.clipPos = e.Semantic == imui.SemanticClipPos
			hasPos = true
		case e.Semantic == imui.SemanticUV && e.Type <= imui.Float4:
			gl.VertexAttribPointerWithOffset(locUV, min(n, 2), gl.FLOAT, false, stride, offset)
			gl.EnableVertexAttribArray(locUV)
		case e.Semantic == imui.SemanticColor && e.Type == imui.UInt1:
			// packed 0xAABBGGRR, normalized uint8x4
			gl.VertexAttribPointerWithOffset(locColor, 4, gl.UNSIGNED_BYTE, true, stride, offset)
			gl.EnableVertexAttribArray(locColor)
		case e.Semantic == imui.SemanticColor && e.Type <= imui.Float4:
			gl.VertexAttribPointerWithOffset(locColor, n, gl.FLOAT, false, stride, offset)
			gl.EnableVertexAttribArray(locColor)
		default:
			return fmt.Errorf("opengl: unsupported vertex element %s", e)
		}
		offset += uintptr(size)
	}
	if !hasPos {
		return fmt.Errorf("opengl: vertex format has no position")
	}
	return nil
}

// Font returns the built-in 8x8 bitmap font.
func (r *Renderer) Font() *imui.Font {
	return r.font
}

// UploadFont rasterizes f into a new alpha texture and assigns it to f.
func (r *Renderer) UploadFont(f *imui.Font) error {
	w, h := f.MinAtlasSize()
	if w == 0 || h == 0 {
		return fmt.Errorf("opengl: font %s has no atlas", f.Name())
	}
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	if err := f.Rasterize(img); err != nil {
		return fmt.Errorf("opengl: rasterize %s: %w", f.Name(), err)
	}
	tex := uploadAlpha(w, h, img.Pix, gl.LINEAR)
	r.textures = append(r.textures, tex)
	f.SetTexture(imui.TextureID(tex))
	return nil
}

// RegisterRGBATexture marks a texture as RGBA (vs alpha-only).
// RGBA textures use all four channels for color, while alpha-only textures
// use just the R channel for alpha (tinted by vertex color).
func (r *Renderer) RegisterRGBATexture(tex imui.TextureID) {
	r.rgbaTextures[tex] = true
}

// UnregisterRGBATexture removes a texture from the RGBA tracking.
func (r *Renderer) UnregisterRGBATexture(tex imui.TextureID) {
	delete(r.rgbaTextures, tex)
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render issues one draw call per command of d.
func (r *Renderer) Render(d *imui.DrawData) error {
	if d == nil || d.VertexCount == 0 || len(d.Commands) == 0 {
		return nil
	}
	if d.VertexStride != r.format.Stride() {
		return fmt.Errorf("opengl: draw data stride %d, renderer expects %d", d.VertexStride, r.format.Stride())
	}

	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var blendEnabled, depthEnabled, cullEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.shader)

	proj := identityMatrix()
	if !r.clipPos {
		proj = orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	}
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.VertexData), gl.Ptr(d.VertexData), gl.STREAM_DRAW)

	indexed := d.Indexed() && len(d.Indices) > 0
	if indexed {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, gl.Ptr(d.Indices), gl.STREAM_DRAW)
	}

	for _, cmd := range d.Commands {
		if cmd.Count == 0 {
			continue
		}

		if cmd.Texture != 0 {
			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.Texture))
			gl.Uniform1i(r.useTexLoc, 1)
			if r.rgbaTextures[cmd.Texture] {
				gl.Uniform1i(r.isRGBATexLoc, 1)
			} else {
				gl.Uniform1i(r.isRGBATexLoc, 0)
			}
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
			gl.Uniform1i(r.isRGBATexLoc, 0)
		}

		mode := primitiveMode(cmd.Primitive)
		if indexed {
			gl.DrawElementsWithOffset(mode, int32(cmd.Count), gl.UNSIGNED_INT, uintptr(cmd.Offset)*4)
		} else {
			gl.DrawArrays(mode, int32(cmd.Offset), int32(cmd.Count))
		}
	}

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))

	if blendEnabled {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if cullEnabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	gl.BindVertexArray(0)

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		return fmt.Errorf("opengl: render: error 0x%x", errCode)
	}
	return nil
}

func primitiveMode(p imui.Primitive) uint32 {
	switch p {
	case imui.PrimitiveTriangleStrip:
		return gl.TRIANGLE_STRIP
	case imui.PrimitiveLines:
		return gl.LINES
	default:
		return gl.TRIANGLES
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	for i := range r.textures {
		gl.DeleteTextures(1, &r.textures[i])
	}
	r.textures = nil
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	// Compile vertex shader
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	// Compile fragment shader
	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func identityMatrix() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
