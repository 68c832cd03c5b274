package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"localbistro/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Bookings service.BookingServiceInterface
	Gallery  service.GalleryServiceInterface
	Reviews  service.ReviewServiceInterface
	Info     service.InfoServiceInterface
	QR       service.QRGenerator
}

func NewHandler(menu service.MenuServiceInterface, bookings service.BookingServiceInterface, gallery service.GalleryServiceInterface, reviews service.ReviewServiceInterface, info service.InfoServiceInterface, qr service.QRGenerator) *Handler {
	return &Handler{
		Menu:     menu,
		Bookings: bookings,
		Gallery:  gallery,
		Reviews:  reviews,
		Info:     info,
		QR:       qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/categories", h.getMenuCategories).Methods("GET")
	r.HandleFunc("/api/menu/{dishId}", h.getDish).Methods("GET")

	r.HandleFunc("/api/cart", h.createCart).Methods("POST")
	r.HandleFunc("/api/cart/{id}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{id}", h.deleteCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{id}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/{id}/handoff", h.getOrderHandoff).Methods("GET")
	r.HandleFunc("/api/cart/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/bookings/options", h.getBookingOptions).Methods("GET")
	r.HandleFunc("/api/bookings", h.startBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}", h.getBooking).Methods("GET")
	r.HandleFunc("/api/bookings/{id}/selection", h.updateBookingSelection).Methods("PUT")
	r.HandleFunc("/api/bookings/{id}/contact", h.updateBookingContact).Methods("PUT")
	r.HandleFunc("/api/bookings/{id}/continue", h.continueBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}/back", h.backBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}/confirm", h.confirmBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}/restart", h.restartBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}/qrcode", h.getBookingQRCode).Methods("GET")

	r.HandleFunc("/api/gallery", h.getGallery).Methods("GET")
	r.HandleFunc("/api/gallery/categories", h.getGalleryCategories).Methods("GET")
	r.HandleFunc("/api/gallery/lightbox", h.startLightbox).Methods("POST")
	r.HandleFunc("/api/gallery/lightbox/{id}", h.getLightbox).Methods("GET")
	r.HandleFunc("/api/gallery/lightbox/{id}", h.deleteLightbox).Methods("DELETE")
	r.HandleFunc("/api/gallery/lightbox/{id}/category", h.setLightboxCategory).Methods("PUT")
	r.HandleFunc("/api/gallery/lightbox/{id}/open", h.openLightbox).Methods("POST")
	r.HandleFunc("/api/gallery/lightbox/{id}/next", h.nextLightbox).Methods("POST")
	r.HandleFunc("/api/gallery/lightbox/{id}/previous", h.previousLightbox).Methods("POST")
	r.HandleFunc("/api/gallery/lightbox/{id}/close", h.closeLightbox).Methods("POST")

	r.HandleFunc("/api/reviews", h.getReviews).Methods("GET")
	r.HandleFunc("/api/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/reviews/summary", h.getReviewSummary).Methods("GET")
	r.HandleFunc("/api/reviews/{id}/helpful", h.markReviewHelpful).Methods("POST")

	r.HandleFunc("/api/info", h.getInfo).Methods("GET")
	r.HandleFunc("/api/info/specials", h.getSpecials).Methods("GET")
	r.HandleFunc("/api/info/handoff", h.getContactHandoff).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "localbistro",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, response)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")
	writeJSON(w, h.Menu.Filter(query, category))
}

func (h *Handler) getMenuCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Menu.Categories())
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Menu.Dish(mux.Vars(r)["dishId"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, dish)
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Menu.CreateCart(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cart)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Menu.Cart(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, summary)
}

func (h *Handler) deleteCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.DeleteCart(r.Context(), mux.Vars(r)["id"]); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DishID   string `json:"dish_id"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if payload.DishID == "" {
		http.Error(w, "Missing dish_id", http.StatusBadRequest)
		return
	}
	summary, err := h.Menu.AddToCart(r.Context(), mux.Vars(r)["id"], payload.DishID, payload.Quantity)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, summary)
}

func (h *Handler) getOrderHandoff(w http.ResponseWriter, r *http.Request) {
	handoff, err := h.Menu.OrderHandoff(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, handoff)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	handoff, err := h.Menu.OrderHandoff(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	h.writeQRCode(w, handoff.Link)
}

func (h *Handler) getBookingOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Bookings.Options())
}

func (h *Handler) startBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.Start(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, booking)
}

func (h *Handler) updateBookingSelection(w http.ResponseWriter, r *http.Request) {
	var sel service.BookingSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	booking, err := h.Bookings.UpdateSelection(r.Context(), mux.Vars(r)["id"], sel)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, booking)
}

func (h *Handler) updateBookingContact(w http.ResponseWriter, r *http.Request) {
	var contact service.BookingContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	booking, err := h.Bookings.UpdateContact(r.Context(), mux.Vars(r)["id"], contact)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, booking)
}

func (h *Handler) continueBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.Continue(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, booking)
}

func (h *Handler) backBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.Back(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, booking)
}

func (h *Handler) confirmBooking(w http.ResponseWriter, r *http.Request) {
	booking, handoff, err := h.Bookings.Confirm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"booking": booking,
		"handoff": handoff,
	})
}

func (h *Handler) restartBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.Restart(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, booking)
}

func (h *Handler) getBookingQRCode(w http.ResponseWriter, r *http.Request) {
	handoff, err := h.Bookings.Handoff(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	h.writeQRCode(w, handoff.Link)
}

func (h *Handler) getGallery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Gallery.Images(r.URL.Query().Get("category")))
}

func (h *Handler) getGalleryCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Gallery.Categories())
}

func (h *Handler) startLightbox(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Category string `json:"category"`
	}
	// The body is optional; an empty one starts an unfiltered lightbox.
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && err != io.EOF {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	view, err := h.Gallery.StartLightbox(r.Context(), payload.Category)
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(view)
}

func (h *Handler) getLightbox(w http.ResponseWriter, r *http.Request) {
	view, err := h.Gallery.Lightbox(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) deleteLightbox(w http.ResponseWriter, r *http.Request) {
	if err := h.Gallery.DeleteLightbox(r.Context(), mux.Vars(r)["id"]); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setLightboxCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	view, err := h.Gallery.SetCategory(r.Context(), mux.Vars(r)["id"], payload.Category)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) openLightbox(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	view, err := h.Gallery.Open(r.Context(), mux.Vars(r)["id"], payload.Index)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) nextLightbox(w http.ResponseWriter, r *http.Request) {
	view, err := h.Gallery.Next(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) previousLightbox(w http.ResponseWriter, r *http.Request) {
	view, err := h.Gallery.Previous(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) closeLightbox(w http.ResponseWriter, r *http.Request) {
	view, err := h.Gallery.Close(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Reviews.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, reviews)
}

func (h *Handler) getReviewSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Reviews.Summary(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, summary)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name   string `json:"name"`
		Rating int    `json:"rating"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	review, err := h.Reviews.Submit(r.Context(), payload.Name, payload.Rating, payload.Text)
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

func (h *Handler) markReviewHelpful(w http.ResponseWriter, r *http.Request) {
	review, err := h.Reviews.MarkHelpful(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, review)
}

func (h *Handler) getInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Info.Business())
}

func (h *Handler) getSpecials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Info.Specials())
}

func (h *Handler) getContactHandoff(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Info.ContactHandoff(r.Context(), r.URL.Query().Get("topic")))
}

func (h *Handler) writeQRCode(w http.ResponseWriter, link string) {
	png, err := h.QR.Generate(link)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// serviceError translates the service sentinels to HTTP statuses; an
// unrecognized error is treated as internal.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDishNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrLightboxNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrDateTimeRequired),
		errors.Is(err, service.ErrContactRequired),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidTimeSlot),
		errors.Is(err, service.ErrInvalidSeating),
		errors.Is(err, service.ErrNotConfirmed),
		errors.Is(err, service.ErrLightboxClosed),
		errors.Is(err, service.ErrNoImages),
		errors.Is(err, service.ErrIndexOutOfRange),
		errors.Is(err, service.ErrInvalidReview):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrAlreadyConfirmed),
		errors.Is(err, service.ErrWrongStep):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
