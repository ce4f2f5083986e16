package messages

// SpectateHello is sent by a spectator right after connecting so the server
// can name it in its logs and in the directory listing
type SpectateHello struct {
	Name    string
	Version string
}
