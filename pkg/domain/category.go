package domain

// Category is the feedback category label, stable wire value
type Category string

// all supported categories
const (
	CategoryFeatureRequest    Category = "feature_request"
	CategoryBugReport         Category = "bug_report"
	CategoryShippingComplaint Category = "shipping_complaint"
	CategoryProductQuality    Category = "product_quality"
	CategoryCustomerService   Category = "customer_service"
	CategoryGeneralInquiry    Category = "general_inquiry"
	CategoryRefundRequest     Category = "refund_request"
	CategoryCompliment        Category = "compliment"
)

// Categories lists all categories in enumeration order
var Categories = []Category{
	CategoryFeatureRequest,
	CategoryBugReport,
	CategoryShippingComplaint,
	CategoryProductQuality,
	CategoryCustomerService,
	CategoryGeneralInquiry,
	CategoryRefundRequest,
	CategoryCompliment,
}

var categoryDescriptions = map[Category]string{
	CategoryFeatureRequest:    "Requests for new features or improvements",
	CategoryBugReport:         "Reports of technical issues, errors, or malfunctions",
	CategoryShippingComplaint: "Issues related to delivery, packaging, or shipping",
	CategoryProductQuality:    "Concerns about product quality, materials, or build",
	CategoryCustomerService:   "Feedback about customer support or service experience",
	CategoryGeneralInquiry:    "General questions or neutral feedback",
	CategoryRefundRequest:     "Requests for refunds, returns, or billing issues",
	CategoryCompliment:        "Positive feedback, praise, or compliments",
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, ok := categoryDescriptions[c]
	return ok
}

// Description returns one-line human description of the category
func (c Category) Description() string {
	return categoryDescriptions[c]
}

// SentimentLabel is a coarse sentiment bucket derived from the sentiment score
type SentimentLabel string

// sentiment labels
const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// Method tells which classifier produced a category or sentiment
type Method string

// classification methods, as stored in history entries
const (
	MethodAI       Method = "ai_classification"
	MethodFallback Method = "fallback"
	MethodKeyword  Method = "keyword_based"
)
