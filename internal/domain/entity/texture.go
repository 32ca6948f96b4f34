package entity

// TextureID is an opaque texture handle. Zero means "drawn from the tile matrix".
type TextureID uint32

// TextureBook hands out the left/right texture pair for a kind.
type TextureBook interface {
	Pair(k Kind) (left, right TextureID)
}

// KindTextures is the default book. It encodes the kind and the facing into the
// handle so renderers without real textures can still tell sprites apart.
type KindTextures struct{}

// Pair returns the texture pair for k. Tile-backed kinds get zero handles.
func (KindTextures) Pair(k Kind) (TextureID, TextureID) {
	if k.Static() || k == KindDead {
		return 0, 0
	}
	base := TextureID(k) << 1
	return base | 1, base + 2
}

// DecodeTexture reverses KindTextures.Pair.
func DecodeTexture(id TextureID) (k Kind, right bool) {
	if id == 0 {
		return KindDead, false
	}
	if id&1 == 1 {
		return Kind(id >> 1), false
	}
	return Kind((id - 2) >> 1), true
}
