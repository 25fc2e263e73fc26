package command

// FFmpeg arguments injected through yt-dlp's postprocessor passthrough.
const (
	FFmpegPrefix = "ffmpeg:"

	VideoCodecFlag = "-c:v"
	VideoCodec     = "libx264"
	PresetFlag     = "-preset"
	Preset         = "medium"
	CRFFlag        = "-crf"

	AudioCodecFlag   = "-c:a"
	AudioCodec       = "aac"
	AudioBitrateFlag = "-b:a"

	// Audio re-encode bitrate whenever compression is active.
	CompressedAudioBitrate = "128k"
)
