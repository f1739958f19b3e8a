package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/reporting"
)

func GetDRE(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodFromRequest(w, r)
		if !ok {
			return
		}

		dre, err := service.GenerateDRE(r.Context(), restaurantID(r), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar DRE")
			return
		}

		writeJSON(w, http.StatusOK, dre)
	}
}

// ExportDREPDF gera o PDF em memória para que erros ainda virem resposta JSON
func ExportDREPDF(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodFromRequest(w, r)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := service.ExportDREPDF(r.Context(), restaurantID(r), period, &buf); err != nil {
			writeServiceError(w, r, err, "Erro ao exportar DRE")
			return
		}

		filename := fmt.Sprintf("dre_%s_%s.pdf", period.Start.Format("20060102"), period.End.Format("20060102"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

// GetCMV aceita ?initial_inventory= e ?final_inventory= para sobrescrever os estoques
func GetCMV(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodFromRequest(w, r)
		if !ok {
			return
		}
		initial, ok := optionalFloat(w, r, "initial_inventory")
		if !ok {
			return
		}
		final, ok := optionalFloat(w, r, "final_inventory")
		if !ok {
			return
		}

		report, err := service.GenerateCMV(r.Context(), restaurantID(r), domain.CMVRequest{
			Period:           period,
			InitialInventory: initial,
			FinalInventory:   final,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar CMV")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
