package wicketserver

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// RespondWithJSON writes data as an indented JSON response.
func RespondWithJSON(statusCode int, w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		log.WithError(err).Error("could not write json response")
	}
}

func failureResponse(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(statusCode, w, map[string]interface{}{
		"code":    statusCode,
		"message": message,
	})
}
