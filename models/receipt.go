package models

type ReceiptRecord struct {
	Merchant        string   `json:"merchant"`
	Date            string   `json:"date"`
	Total           float64  `json:"total"`
	Items           []string `json:"items"`
	Category        string   `json:"category"`
	DetectedEmotion string   `json:"detected_emotion"`
}
