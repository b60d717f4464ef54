package ports

// QRResolver maps a participant token to a fetchable QR image reference.
// Callers treat failure by omitting the image, never by aborting the render.
type QRResolver interface {
	ImageURL(token string) (string, error)
}
