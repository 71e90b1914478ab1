// The serve subcommand: a JSON API over the pipeline.
//
// Endpoints:
//
//	POST /api/normalize   body: {"text":"..."}
//	GET  /api/parse?words=<space-separated phrase>
//	GET  /api/ordinal?word=<word>
package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/akpeker/text2num/compose"
	"github.com/akpeker/text2num/lang"
	"github.com/akpeker/text2num/ordinal"
	"github.com/akpeker/text2num/pipeline"
	"github.com/akpeker/text2num/segment"
)

type normalizeResponse struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Value   string `json:"value"`
	Int     int64  `json:"int"`
	Decimal bool   `json:"decimal"`
}

type ordinalResponse struct {
	Word     string `json:"word"`
	Cardinal string `json:"cardinal"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func handleNormalize(pl *pipeline.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}
		writeJSON(w, http.StatusOK, normalizeResponse{Text: pl.Normalize(body.Text)})
	}
}

func handleParse(p *lang.Profile, sp *segment.Splitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		words := strings.Fields(r.URL.Query().Get("words"))
		if len(words) == 0 {
			writeError(w, http.StatusBadRequest, "missing 'words' query parameter")
			return
		}
		toks, err := phraseTokens(sp, words)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		n, err := compose.ComposeTokens(p, toks)
		switch {
		case errors.Is(err, compose.ErrNotNumber):
			writeError(w, http.StatusNotFound, "not a number phrase")
		case err != nil:
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeJSON(w, http.StatusOK, parseResponse{
				Value:   n.Format(p.DecimalSymbol()),
				Int:     n.Int64(),
				Decimal: n.IsDecimal(),
			})
		}
	}
}

func handleOrdinal(conv *ordinal.Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		card, ok := conv.ToCardinal(word)
		if !ok {
			writeError(w, http.StatusNotFound, "not an ordinal")
			return
		}
		writeJSON(w, http.StatusOK, ordinalResponse{Word: word, Cardinal: card})
	}
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the normalization pipeline as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile()
			if err != nil {
				return err
			}
			// The API always runs every rewrite pass; clients that want the
			// plain word pass can post pre-filtered text.
			pl, err := pipeline.New(p, pipeline.Options{
				Currency: true,
				Dates:    true,
				Times:    len(p.TimeWords()) > 0,
			})
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.HandleFunc("/api/normalize", handleNormalize(pl))
			mux.HandleFunc("/api/parse", handleParse(p, segment.New(p)))
			mux.HandleFunc("/api/ordinal", handleOrdinal(ordinal.New(p)))

			log.Printf("listening on %s (profile %s)", addr, p.Name())
			return http.ListenAndServe(addr, cors.Default().Handler(mux))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
