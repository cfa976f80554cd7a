package report

// DefaultDocument returns the technical report describing the renderer's
// real-time texture editing system: how a screen-space brush stroke becomes
// a texture-space edit, how edits are buffered on the CPU, synchronized to
// the GPU, and recorded for undo.
func DefaultDocument() *Document {
	return &Document{
		Title:    "Real-time Texture Editing System",
		Subtitle: "Technical Documentation",
		Info: [][2]string{
			{"Project", "Photogrammetry model editor"},
			{"Document version", "1.0"},
			{"Module", "Clone stamp tool"},
			{"Rendering", "Vulkan, SPIR-V shaders"},
		},
		Sections: []Section{
			overviewSection(),
			mappingSection(),
			bufferSection(),
			gpuUpdateSection(),
			cloneStampSection(),
			undoSection(),
			dataFlowSection(),
		},
	}
}

func overviewSection() Section {
	return Section{
		Title: "1. System Overview",
		Blocks: []Block{
			Paragraph("The texture editing system uses screen-space projection: " +
				"instead of painting on an unwrapped UV layout, the user paints " +
				"directly on the 3D view and the system maps every screen " +
				"coordinate back to texture space. This gives:"),
			Bullets{
				"WYSIWYG editing - strokes appear on the model immediately",
				"No UV layout knowledge required from the user",
				"Edits happen at native texture resolution",
				"Full undo/redo history for every stroke",
			},
			Paragraph("Core component responsibilities:"),
			Table{
				Header: []string{"Component", "Responsibility", "Key type"},
				Widths: []float64{35, 75, 60},
				Rows: [][]string{
					{"GPU picking", "Resolve the clicked triangle", "FacePicker"},
					{"Mapping", "Screen coordinate to texture coordinate", "ScreenToTextureMapper"},
					{"Edit buffer", "CPU-side copy of the texture", "TextureEditBuffer"},
					{"GPU update", "Upload dirty regions to the GPU texture", "MeshRenderer"},
					{"Undo system", "Pixel-level change recording", "TextureEditCommand"},
				},
			},
		},
	}
}

func mappingSection() Section {
	return Section{
		Title: "2. Screen Space to Texture Space Mapping",
		Blocks: []Block{
			Paragraph("Converting a mouse position into a texture coordinate is " +
				"the core of the system. The conversion runs in four steps:"),
			Diagram{
				Width:  130,
				Height: 48,
				Boxes: []DiagramBox{
					{X: 0, Y: 4, W: 26, H: 12, Lines: []string{"Screen", "Click"}},
					{X: 34, Y: 4, W: 26, H: 12, Lines: []string{"Face", "Picker"}},
					{X: 68, Y: 4, W: 26, H: 12, Lines: []string{"Ray-Triangle", "Intersect"}},
					{X: 102, Y: 4, W: 26, H: 12, Lines: []string{"UV", "Coord"}},
					{X: 68, Y: 32, W: 26, H: 12, Lines: []string{"Edit", "Buffer"}},
					{X: 102, Y: 32, W: 26, H: 12, Lines: []string{"GPU", "Texture"}},
				},
				Arrows: []DiagramArrow{
					{X1: 26, Y1: 10, X2: 34, Y2: 10, Head: true},
					{X1: 60, Y1: 10, X2: 68, Y2: 10, Head: true},
					{X1: 94, Y1: 10, X2: 102, Y2: 10, Head: true},
					{X1: 115, Y1: 16, X2: 115, Y2: 24, Head: false},
					{X1: 115, Y1: 24, X2: 81, Y2: 24, Head: false},
					{X1: 81, Y1: 24, X2: 81, Y2: 32, Head: true},
					{X1: 94, Y1: 38, X2: 102, Y2: 38, Head: true},
				},
				Caption: "Figure 1: screen to texture coordinate conversion",
			},
			Heading("2.1 GPU Face Picking"),
			Paragraph("The mesh is rendered into an off-screen ID buffer where " +
				"each triangle writes its primitive index as a color. Reading " +
				"back the pixel under the cursor identifies the clicked face " +
				"without any CPU-side spatial structure."),
			Code{
				"uint faceID = SV_PrimitiveID;  // hardware primitive ID",
				"output.Color = float4(",
				"    float(faceID & 0xFF) / 255.0,",
				"    float((faceID >> 8) & 0xFF) / 255.0,",
				"    float((faceID >> 16) & 0xFF) / 255.0,",
				"    1.0);",
			},
			Heading("2.2 Ray-Triangle Intersection (Moller-Trumbore)"),
			Paragraph("With the face known, the exact hit point comes from " +
				"intersecting the camera ray with that single triangle:"),
			Formula{
				"Ray:      R(t) = O + t*D",
				"Triangle: P = (1-u-v)*V0 + u*V1 + v*V2",
			},
			Bullets{
				"Edge vectors: E1 = V1 - V0, E2 = V2 - V0",
				"det = E1 . (D x E2); |det| < epsilon means the ray is parallel",
				"u = (T . P) / det with T = O - V0",
				"v = (D . Q) / det with Q = T x E1",
				"t = (E2 . Q) / det",
				"Accept when u >= 0, v >= 0, u + v <= 1 and t > 0",
			},
			Heading("2.3 Barycentric UV Interpolation"),
			Paragraph("The barycentric weights (u, v, w) with w = 1 - u - v " +
				"interpolate the vertex UVs to the precise texture coordinate " +
				"of the hit point, which then scales to pixel coordinates:"),
			Formula{
				"UV = w*UV0 + u*UV1 + v*UV2",
				"texX = floor(UV.u * textureWidth)",
				"texY = floor((1 - UV.v) * textureHeight)  // V axis flip",
			},
		},
	}
}

func bufferSection() Section {
	return Section{
		Title: "3. CPU Texture Edit Buffer",
		Blocks: []Block{
			Paragraph("TextureEditBuffer keeps an editable CPU copy of the " +
				"texture. All brush operations write into this buffer; the GPU " +
				"texture is only a view of it."),
			Table{
				Header: []string{"Member", "Type", "Purpose"},
				Widths: []float64{40, 45, 85},
				Rows: [][]string{
					{"data", "[]byte", "Current edit data (RGBA)"},
					{"originalData", "[]byte", "Pristine backup for undo and eraser"},
					{"dirtyRects", "[]Rect", "Regions pending GPU upload"},
					{"width, height", "int", "Texture dimensions"},
					{"modified", "bool", "Unsaved changes flag"},
				},
			},
			Heading("3.1 Dirty Region Tracking"),
			Paragraph("Every pixel write marks its bounding box dirty. Dirty " +
				"rectangles merge into a single bounding rectangle before " +
				"upload, and the GPU sync clears the dirty state. Only dirty " +
				"regions ever cross the PCIe bus: a small brush stroke on a 4K " +
				"RGBA texture (64 MB) uploads a few kilobytes."),
		},
	}
}

func gpuUpdateSection() Section {
	return Section{
		Title: "4. GPU Texture Update",
		Blocks: []Block{
			Paragraph("After the edit buffer changes, the dirty bounding box is " +
				"uploaded with a sub-resource update restricted to that region:"),
			Code{
				"if !buffer.Dirty() {",
				"    return",
				"}",
				"box := buffer.DirtyBounds()",
				"ctx.UpdateTexture(texture, mip0, box, buffer.Rows(box))",
				"buffer.ClearDirty()",
			},
			Paragraph("The update runs once per frame at most, coalescing all " +
				"strokes recorded since the previous frame."),
		},
	}
}

func cloneStampSection() Section {
	return Section{
		Title: "5. Clone Stamp Algorithm",
		Blocks: []Block{
			Paragraph("The clone stamp copies pixels from one texture region to " +
				"another for repair and duplication work."),
			Heading("5.1 Source Selection"),
			Paragraph("Alt+Click records the clone source in texture " +
				"coordinates and resets the stroke's first destination point."),
			Heading("5.2 Offset Tracking"),
			Paragraph("The first painted position fixes the offset between " +
				"source and destination. While the stroke continues, the sample " +
				"position follows the brush at that constant offset:"),
			Formula{
				"offset = source - firstDestination",
				"sample = destination + offset",
			},
			Heading("5.3 Pixel Transfer"),
			Paragraph("Within the circular brush footprint, pixels are read " +
				"from the pristine original data (not the working buffer, which " +
				"would feed back into itself) and written to the destination:"),
			Code{
				"for dy := -radius; dy <= radius; dy++ {",
				"    for dx := -radius; dx <= radius; dx++ {",
				"        if dx*dx+dy*dy > radius*radius {",
				"            continue",
				"        }",
				"        dst := dest.Add(Pt(dx, dy))",
				"        src := dst.Add(offset)",
				"        buf.SetPixel(dst, buf.OriginalPixel(src))",
				"    }",
				"}",
			},
		},
	}
}

func undoSection() Section {
	return Section{
		Title: "6. Undo/Redo System",
		Blocks: []Block{
			Paragraph("Each brush stroke becomes one undo command recording " +
				"per-pixel before and after values:"),
			Code{
				"type PixelChange struct {",
				"    X, Y     int16",
				"    Old, New [4]uint8  // RGBA",
				"}",
			},
			Table{
				Header: []string{"Phase", "Operation", "Effect"},
				Widths: []float64{35, 60, 75},
				Rows: [][]string{
					{"begin stroke", "new TextureEditCommand", "Start recording"},
					{"paint", "recordPixel(x, y, old, new)", "Append change"},
					{"end stroke", "finalize + push", "Command onto undo stack"},
					{"undo", "restore old values", "Marks regions dirty"},
					{"redo", "reapply new values", "Marks regions dirty"},
				},
			},
			Paragraph("Undo and redo mutate the CPU buffer and mark the touched " +
				"regions dirty; the regular per-frame GPU sync then makes the " +
				"result visible without any special casing."),
		},
	}
}

func dataFlowSection() Section {
	return Section{
		Title: "7. End-to-End Data Flow",
		Blocks: []Block{
			Paragraph("One complete clone stamp operation flows through the " +
				"system as follows:"),
			Table{
				Header: []string{"Step", "Component", "Input", "Output"},
				Widths: []float64{15, 55, 50, 50},
				Rows: [][]string{
					{"1", "Mouse event", "Screen (x, y)", "Stroke begin"},
					{"2", "FacePicker", "Screen (x, y)", "Face ID"},
					{"3", "ScreenToTextureMapper", "Face ID + screen", "UV coordinate"},
					{"4", "UV to pixel", "UV + texture size", "Texel (x, y)"},
					{"5", "Brush", "Texel + offset", "Edit buffer writes"},
					{"6", "TextureEditCommand", "Pixel changes", "Undo record"},
					{"7", "GPU update", "Dirty region", "Texture upload"},
					{"8", "Render loop", "Updated texture", "On-screen result"},
				},
			},
			Paragraph("Typical latency budget:"),
			Table{
				Header: []string{"Operation", "Typical cost", "Bound by"},
				Widths: []float64{60, 40, 70},
				Rows: [][]string{
					{"Face picking (GPU)", "< 1 ms", "GPU render"},
					{"Ray-triangle intersection", "< 0.1 ms", "Arithmetic"},
					{"Pixel editing (CPU)", "< 1 ms", "Memory bandwidth"},
					{"GPU texture update", "1-5 ms", "PCIe transfer"},
					{"Total", "< 16 ms", "60 FPS interaction"},
				},
			},
		},
	}
}
