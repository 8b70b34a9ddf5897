package gui

import "hash/fnv"

// ID identifies a widget across frames.
type ID uint64

// GetID derives a widget ID from a label.
// The parent ID and a per-frame call counter are mixed in, so the same
// label under different parents, or twice in a row, yields distinct IDs as
// long as widgets are emitted in the same order every frame.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++

	h := fnv.New64a()
	h.Write([]byte(label))

	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | h.Sum64()&0xFFFF)
}

// PushID scopes subsequent GetID calls under label.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID ends the innermost PushID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the innermost scope ID, or 0 at top level.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
