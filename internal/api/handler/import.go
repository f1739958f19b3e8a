package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/importing"
)

// limite do dump do localStorage, que no navegador fica em torno de 5 MB
const maxImportBodyBytes = 10 << 20

func ImportLocalStorage(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxImportBodyBytes)

		var dump map[string]jsoniter.RawMessage
		if !decodeBody(w, r, &dump) {
			return
		}

		report, err := service.ImportLocalStorage(r.Context(), restaurantID(r), dump)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao importar dados locais")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func ImportHosted(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.ImportHosted(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao importar dados do serviço hospedado")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
