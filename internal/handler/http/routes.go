package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	p := h.routePrefix

	router.Get(p+"/config", h.getConfig)

	router.Get(p+"/wallets/limits", h.getWalletLimits)
	router.Get(p+"/wallets/history", h.getWalletHistory)
	router.Get(p+"/wallets/balance", h.getWalletBalance)

	router.Get(p+"/nfts", h.listNFTs)
	router.Get(p+"/nfts/search", h.searchNFTs)
	router.Post(p+"/nfts/buy", h.buyNFTs)
	router.Post(p+"/nfts/withdraw", h.withdrawNFTs)

	router.Get(p+"/collections/backdrops", h.getBackdrops)
	router.Get(p+"/collections/backdrops/floor", h.getBackdropFloors)

	router.Get(p+"/users/actions", h.getUserActions)

	router.Get(p+"/version", h.getServerVersion)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
