package cfg

import (
	"grabarr/internal/domain/enums"
	"grabarr/internal/domain/keys"
	"grabarr/internal/models"
	"grabarr/internal/validation"

	"github.com/spf13/viper"
)

// BuildRequest assembles and validates a download request from the parsed
// user flags.
func BuildRequest() (*models.DownloadRequest, error) {
	mode, err := enums.ParseMode(viper.GetString(keys.Mode))
	if err != nil {
		return nil, err
	}
	quality, err := enums.ParseQuality(viper.GetString(keys.Quality))
	if err != nil {
		return nil, err
	}
	compression, err := enums.ParseCompression(viper.GetString(keys.Compression))
	if err != nil {
		return nil, err
	}

	r := models.NewDownloadRequest(
		viper.GetString(keys.URL),
		mode,
		quality,
		compression,
		viper.GetInt(keys.CustomCRF),
		viper.GetString(keys.AudioQuality),
		viper.GetString(keys.OutputDir),
		viper.GetString(keys.FilenameTemplate),
	)

	if err := validation.ValidateRequest(r); err != nil {
		return nil, err
	}
	return r, nil
}
