package requests

type CreateBlog struct {
	Title    string   `json:"title" validate:"required,min=5,max=200"`
	Body     string   `json:"body" validate:"required,min=50"`
	Category string   `json:"category,omitempty" validate:"omitempty,max=60"`
	Tags     []string `json:"tags,omitempty" validate:"omitempty,dive,min=2,max=40"`
}

type UpdateBlog struct {
	Title    string   `json:"title,omitempty" validate:"omitempty,min=5,max=200"`
	Body     string   `json:"body,omitempty" validate:"omitempty,min=50"`
	Category string   `json:"category,omitempty" validate:"omitempty,max=60"`
	Tags     []string `json:"tags,omitempty" validate:"omitempty,dive,min=2,max=40"`
}

type ModerateBlog struct {
	Status   string `json:"status" validate:"required,oneof=verified rejected"`
	Priority int    `json:"priority,omitempty" validate:"omitempty,gte=0,lte=10"`
}
