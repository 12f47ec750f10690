package fiber

type LineSeriesResponse struct {
	DateList     []string  `json:"date_list"`
	ValueList    []float64 `json:"value_list"`
	BaselineList []float64 `json:"baseline_list,omitempty"`
	YMax         float64   `json:"y_max"`
}

type StackMatrixResponse struct {
	Publishers []string    `json:"publishers"`
	Categories []string    `json:"categories"`
	Matrix     [][]float64 `json:"matrix"`
	XMax       float64     `json:"x_max"`
}

type PieShareResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type ScatterPointResponse struct {
	ProductID int     `json:"product_id"`
	Title     string  `json:"title"`
	Publisher string  `json:"publisher"`
	Category  string  `json:"category"`
	Genre     string  `json:"genre"`
	ReadUser  int64   `json:"read_user"`
	PaidUser  int64   `json:"paid_user"`
	Sales     float64 `json:"sales"`
}

type ProductSummaryResponse struct {
	ProductID     int      `json:"product_id"`
	Title         string   `json:"title"`
	Publisher     string   `json:"publisher"`
	Genre         string   `json:"genre"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	Tags          []string `json:"tags"`
	StartedSaleAt string   `json:"started_sale_at"`
	ThumbPath     string   `json:"thumb_path"`
	SalesTotal    float64  `json:"sales_total"`
	AppTotal      float64  `json:"app_total"`
	WebTotal      float64  `json:"web_total"`
	Badges        []string `json:"badges"`
}

type ChartsResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`

	Line       LineSeriesResponse       `json:"line"`
	Stack      StackMatrixResponse      `json:"stack"`
	GenreSales PieShareResponse         `json:"genre_sales"`
	GenreCount PieShareResponse         `json:"genre_count"`
	Scatter    []ScatterPointResponse   `json:"scatter"`
	MaxSales   float64                  `json:"max_sales"`
	Products   []ProductSummaryResponse `json:"products"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"Chart query is invalid"`
}
