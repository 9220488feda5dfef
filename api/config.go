package api

import (
	"sync"

	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	AdminConfig
	MediaConfig
}

type StorageConfig struct {
	TableNameAreas       string
	TableNameSubmissions string
	TableNameHistory     string
}

type ServerConfig struct {
	Port int
}

// AdminConfig is the static shared credential pair plus the header token the
// admin routes expect. This gate mirrors the original client-side check and
// is NOT a security boundary; a real deployment needs server-enforced
// authorization.
type AdminConfig struct {
	Username string
	Password string
	Token    string
}

type MediaConfig struct {
	MaxImageBytes     int
	MaxImageDimension int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameAreas:       viper.GetString("storage.TableNameAreas"),
			TableNameSubmissions: viper.GetString("storage.TableNameSubmissions"),
			TableNameHistory:     viper.GetString("storage.TableNameHistory"),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
		AdminConfig: AdminConfig{
			Username: getStringOrDefault("admin.username", "admin"),
			Password: getStringOrDefault("admin.password", "TeamZyrox"),
			Token:    getStringOrDefault("admin.token", "TeamZyrox"),
		},
		MediaConfig: MediaConfig{
			MaxImageBytes:     getIntOrDefault("media.maxImageBytes", 800*1024),
			MaxImageDimension: getIntOrDefault("media.maxImageDimension", 1200),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
