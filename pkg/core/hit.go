package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64 // Parameter t along the ray
	Point     Vec3    // Point of intersection
	Normal    Vec3    // Surface normal, always opposing the incoming ray
	FrontFace bool    // Whether ray hit the front face
	Material  int     // Index into the scene's material list
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
