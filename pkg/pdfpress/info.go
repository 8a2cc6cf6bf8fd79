package pdfpress

type PageInfo struct {
	Number int     `json:"number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type DocumentInfo struct {
	PageCount int        `json:"pageCount"`
	Pages     []PageInfo `json:"pages"`
}

// Info reports the page count and the size in points of every page.
func Info(src Source, cfg Config) (*DocumentInfo, error) {
	doc, owned, err := Resolve(src, cfg)
	if err != nil {
		return nil, err
	}
	if owned {
		defer doc.Close()
	}

	dims, err := doc.PageSizes()
	if err != nil {
		return nil, err
	}

	info := DocumentInfo{
		PageCount: doc.PageCount(),
		Pages:     make([]PageInfo, len(dims)),
	}
	for i, d := range dims {
		info.Pages[i] = PageInfo{Number: i + 1, Width: d.Width, Height: d.Height}
	}

	return &info, nil
}
