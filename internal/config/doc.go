// Package config resolves curtaincall settings from the environment.
//
// Values are read from process environment variables after an optional
// dotenv file has been loaded; variables already set in the environment win
// over the file.
//
//	settings, err := config.Load(".env", "")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(settings.DataDir, settings.Remote)
//
// Recognised variables:
//   - OUTPUT_DIR: data directory holding collection.json (default ./data)
//   - ENCORA_API_KEY: bearer token for the Encora collection API
//   - ENCORA_API_URL: collection endpoint
//   - ENCORA_PER_PAGE: page size requested from the API
//   - RCLONE_REMOTE: rclone remote listed by the exporter (default Musicals)
//   - RCLONE_CONFIG: rclone config file (default <data dir>/rclone.conf)
package config
