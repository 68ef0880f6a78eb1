package constants

// TrackKind identifies which media track a stream task fetches.
type TrackKind string

const (
	TrackVideo TrackKind = "video"
	TrackAudio TrackKind = "audio"
)

// Filename returns the local filename a track is written to inside a job
// workspace. Distinct per kind so the two concurrent tasks never collide.
func (k TrackKind) Filename() string {
	switch k {
	case TrackVideo:
		return "video.stream"
	case TrackAudio:
		return "audio.stream"
	}
	return "unknown.stream"
}
