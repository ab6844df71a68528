package response

type CreateCheckoutSessionResponse struct {
	URL string `json:"url"`
}
