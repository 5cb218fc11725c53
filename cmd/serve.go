package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/relayseq/constants"
	"github.com/jsphweid/relayseq/convert"
	"github.com/jsphweid/relayseq/model"
	"github.com/jsphweid/relayseq/render"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVarP(&addr, "addr", "a", constants.DefaultAddr, "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversions over HTTP",
	Long: `Serves POST /convert. The request body is a MIDI file; the optional query
parameters name, format (c or json) and source shape the output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			log.SetLevel(log.InfoLevel)
		}
		return serve(addr)
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrEmptyInput),
		errors.Is(err, model.ErrNoSegments),
		errors.Is(err, model.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func HandleConvert(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	w.Header().Set("X-Request-Id", reqID)
	logger := log.WithField("request_id", reqID)

	query := r.URL.Query()
	source := query.Get("source")
	if source == "" {
		source = "upload.mid"
	}
	outFormat := query.Get("format")
	if outFormat == "" {
		outFormat = render.FormatC
	}

	body := http.MaxBytesReader(w, r.Body, constants.MaxUploadBytes)
	res, err := convert.ConvertReader(body)
	if err != nil {
		logger.WithError(err).Warn("conversion failed")
		writeError(w, statusFor(err), err)
		return
	}

	buf := new(bytes.Buffer)
	opts := render.Options{ArrayName: query.Get("name"), Source: source}
	if err := render.Write(buf, outFormat, res, opts); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	logger.WithFields(log.Fields{
		"source":   source,
		"segments": len(res.Segments),
	}).Info("converted")

	if outFormat == render.FormatJSON {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	buf.WriteTo(w)
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodPost},
		ExposedHeaders: []string{"X-Request-Id"},
	}).Handler(router)
}

func serve(addr string) error {
	log.Infof("listening on %v", addr)
	return http.ListenAndServe(addr, NewRouter())
}
