package gui_test

import (
	"testing"

	"github.com/go-theft-auto/outline/gui"
)

func TestDrawListTextureSplit(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.SetTexture(5)
	dl.AddText(0, 0, "ab", gui.ColorWhite, 1)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if cmd := dl.CmdBuffer[0]; cmd.TextureID != 0 || cmd.ElemCount != 6 {
		t.Errorf("rect command = %+v", cmd)
	}
	if cmd := dl.CmdBuffer[1]; cmd.TextureID != 5 || cmd.ElemCount != 12 || cmd.VertexOffset != 4 {
		t.Errorf("text command = %+v", cmd)
	}
}

func TestDrawListInsertRect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(10, 10, 5, 5, gui.ColorWhite)
	dl.InsertRect(0, 0, 100, 100, gui.ColorGray)
	dl.AddRect(20, 20, 5, 5, gui.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 12 || len(dl.IdxBuffer) != 18 {
		t.Fatalf("buffers: %d vertices, %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if got := dl.VtxBuffer[0].Color; got != gui.ColorGray {
		t.Errorf("first vertex should be the inserted rect, color %#x", got)
	}

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	bg, rest := dl.CmdBuffer[0], dl.CmdBuffer[1]
	if bg.ElemCount != 6 || bg.VertexOffset != 0 || bg.IndexOffset != 0 {
		t.Errorf("background command = %+v", bg)
	}
	if rest.ElemCount != 12 || rest.VertexOffset != 4 || rest.IndexOffset != 6 {
		t.Errorf("content command = %+v", rest)
	}

	// Indices stay relative to their command's vertex offset.
	for i, idx := range dl.IdxBuffer[rest.IndexOffset:] {
		if int(idx)+int(rest.VertexOffset) >= len(dl.VtxBuffer) {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}
}

func TestDrawListInsertRectIntoEmpty(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.InsertRect(0, 0, 10, 10, gui.ColorGray)
	dl.AddRect(1, 1, 2, 2, gui.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if cmd := dl.CmdBuffer[1]; cmd.VertexOffset != 4 || cmd.ElemCount != 6 {
		t.Errorf("content command = %+v", cmd)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, gui.ColorTransparent)
	dl.AddText(0, 0, "x", gui.ColorTransparent, 1)
	dl.InsertRect(0, 0, 10, 10, gui.ColorTransparent)

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("transparent primitives added %d vertices", len(dl.VtxBuffer))
	}
}

func TestRGBAf(t *testing.T) {
	r, g, b, a := gui.UnpackRGBA(gui.RGBAf(0.82, 0, 0.23, 1))
	if r != 209 || g != 0 || b != 59 || a != 255 {
		t.Errorf("RGBAf = %d,%d,%d,%d", r, g, b, a)
	}

	if gui.RGBAf(2, -1, 0, 1) != gui.RGBA(255, 0, 0, 255) {
		t.Error("RGBAf should clamp components")
	}
}
