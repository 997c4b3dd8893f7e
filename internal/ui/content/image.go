package content

import (
	"context"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
)

const (
	keyImageResource  = "imageResource"
	keyImagePath      = "imagePath"
	keyImageRotation  = "imageRotation"
	keyImageAlpha     = "imageAlpha"
	keyImageScaleType = "imageScaleType"
	keyImageFilter    = "imageFilter"
	keyImageTint      = "imageTint"

	// NoResource marks an unset resource id or tint.
	NoResource = -1
)

// Filter is a color effect applied to an image.
type Filter string

const (
	FilterNone       Filter = "NONE"
	FilterGrayscale  Filter = "GRAYSCALE"
	FilterSepia      Filter = "SEPIA"
	FilterBlur       Filter = "BLUR"
	FilterBrightness Filter = "BRIGHTNESS"
	FilterContrast   Filter = "CONTRAST"
	FilterVintage    Filter = "VINTAGE"
)

// AllFilters lists the filters in cycling order.
func AllFilters() []Filter {
	return []Filter{FilterNone, FilterGrayscale, FilterSepia, FilterBlur, FilterBrightness, FilterContrast, FilterVintage}
}

// ParseFilter accepts the persisted name, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllFilters() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown image filter %q", s)
}

// ColorMatrix is a 4x5 row-major RGBA transform; the fifth column is an
// offset in 0..255 channel units.
type ColorMatrix [20]float64

// IdentityMatrix leaves colors unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SaturationMatrix scales color saturation; 0 gives grayscale.
func SaturationMatrix(sat float64) ColorMatrix {
	const lr, lg, lb = 0.213, 0.715, 0.072
	inv := 1 - sat
	r, g, b := lr*inv, lg*inv, lb*inv
	return ColorMatrix{
		r + sat, g, b, 0, 0,
		r, g + sat, b, 0, 0,
		r, g, b + sat, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Then returns the transform applying m first and next second.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var out ColorMatrix
	var prod mat.Dense
	prod.Mul(next.dense(), m.dense())
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			out[r*5+c] = prod.At(r, c)
		}
	}
	return out
}

// dense lifts the matrix to 5x5 homogeneous form.
func (m ColorMatrix) dense() *mat.Dense {
	data := make([]float64, 25)
	copy(data, m[:])
	data[24] = 1
	return mat.NewDense(5, 5, data)
}

// Apply transforms one RGBA color with channels in 0..255, clamping the
// result.
func (m ColorMatrix) Apply(r, g, b, a float64) (float64, float64, float64, float64) {
	in := [5]float64{r, g, b, a, 1}
	var out [4]float64
	for row := 0; row < 4; row++ {
		var sum float64
		for col := 0; col < 5; col++ {
			sum += m[row*5+col] * in[col]
		}
		out[row] = min(max(sum, 0), 255)
	}
	return out[0], out[1], out[2], out[3]
}

// Matrix returns the color transform of the filter.
func (f Filter) Matrix() ColorMatrix {
	switch f {
	case FilterGrayscale:
		return SaturationMatrix(0)
	case FilterSepia:
		return SaturationMatrix(0).Then(ColorMatrix{
			0.393, 0.769, 0.189, 0, 0,
			0.349, 0.686, 0.168, 0, 0,
			0.272, 0.534, 0.131, 0, 0,
			0, 0, 0, 1, 0,
		})
	case FilterBrightness:
		return ColorMatrix{
			1.2, 0, 0, 0, 50,
			0, 1.2, 0, 0, 50,
			0, 0, 1.2, 0, 50,
			0, 0, 0, 1, 0,
		}
	case FilterContrast:
		return ColorMatrix{
			1.5, 0, 0, 0, -64,
			0, 1.5, 0, 0, -64,
			0, 0, 1.5, 0, -64,
			0, 0, 0, 1, 0,
		}
	case FilterVintage:
		return ColorMatrix{
			0.9, 0.5, 0.1, 0, 0,
			0.3, 0.8, 0.1, 0, 0,
			0.2, 0.3, 0.5, 0, 0,
			0, 0, 0, 1, 0,
		}
	case FilterBlur:
		// A real blur is a convolution; as a color transform it only dims.
		return ColorMatrix{
			0.8, 0, 0, 0, 0,
			0, 0.8, 0, 0, 0,
			0, 0, 0.8, 0, 0,
			0, 0, 0, 1, 0,
		}
	default:
		return IdentityMatrix()
	}
}

// Image shows a picture from a bundled resource or a file path.
type Image struct {
	resource  int
	path      string
	rotation  int
	alpha     float64
	scaleType string
	filter    Filter
	tint      int
}

// NewImage creates an empty image panel.
func NewImage() *Image {
	return &Image{
		resource:  NoResource,
		alpha:     1,
		scaleType: "FIT_CENTER",
		filter:    FilterNone,
		tint:      NoResource,
	}
}

func (i *Image) Kind() entity.PanelKind { return entity.PanelImage }

func (i *Image) DefaultSize() entity.Size { return entity.Square(320) }

// SetResource shows a bundled resource and clears the path.
func (i *Image) SetResource(id int) {
	i.resource = id
	i.path = ""
}

// SetPath shows a file and clears the resource.
func (i *Image) SetPath(path string) {
	i.path = path
	i.resource = NoResource
}

// Source returns the resource id and path; at most one is set.
func (i *Image) Source() (resource int, path string) { return i.resource, i.path }

// Rotation returns the rotation in degrees, one of 0, 90, 180, 270.
func (i *Image) Rotation() int { return i.rotation }

// Rotate turns the image 90 degrees clockwise.
func (i *Image) Rotate() { i.rotation = (i.rotation + 90) % 360 }

// Alpha returns the opacity in [0,1].
func (i *Image) Alpha() float64 { return i.alpha }

// SetAlpha sets the opacity, clamped to [0,1].
func (i *Image) SetAlpha(a float64) { i.alpha = min(max(a, 0), 1) }

// Filter returns the active filter.
func (i *Image) Filter() Filter { return i.filter }

// SetFilter selects a filter.
func (i *Image) SetFilter(f Filter) { i.filter = f }

// CycleFilter advances to the next filter.
func (i *Image) CycleFilter() {
	all := AllFilters()
	for n, f := range all {
		if f == i.filter {
			i.filter = all[(n+1)%len(all)]
			return
		}
	}
	i.filter = FilterNone
}

// Tint returns the ARGB tint, or NoResource.
func (i *Image) Tint() int { return i.tint }

// SetTint sets an ARGB tint; NoResource removes it.
func (i *Image) SetTint(argb int) { i.tint = argb }

// ScaleType returns how the image fits its panel.
func (i *Image) ScaleType() string { return i.scaleType }

func (i *Image) SaveData() entity.CustomData {
	return entity.CustomData{
		keyImageResource:  entity.IntValue(i.resource),
		keyImagePath:      entity.StringValue(i.path),
		keyImageRotation:  entity.IntValue(i.rotation),
		keyImageAlpha:     entity.FloatValue(i.alpha),
		keyImageScaleType: entity.StringValue(i.scaleType),
		keyImageFilter:    entity.StringValue(string(i.filter)),
		keyImageTint:      entity.IntValue(i.tint),
	}
}

func (i *Image) LoadData(ctx context.Context, data entity.CustomData) {
	log := logging.FromContext(ctx)
	if v, ok := data.Int(keyImageResource); ok {
		i.resource = v
	}
	if v, ok := data.String(keyImagePath); ok {
		i.path = v
	}
	if v, ok := data.Int(keyImageRotation); ok {
		i.rotation = ((v % 360) + 360) % 360
	}
	if v, ok := data.Float(keyImageAlpha); ok {
		i.SetAlpha(v)
	}
	if v, ok := data.String(keyImageScaleType); ok && v != "" {
		i.scaleType = v
	}
	if v, ok := data.String(keyImageFilter); ok {
		if f, err := ParseFilter(v); err == nil {
			i.filter = f
		} else {
			log.Debug().Err(err).Msg("ignoring stored image filter")
		}
	}
	if v, ok := data.Int(keyImageTint); ok {
		i.tint = v
	}
}

func (i *Image) Buttons() []entity.ControlButton {
	return []entity.ControlButton{
		{Icon: "rotate", Anchor: entity.AnchorBottomEnd, Action: i.Rotate},
		{Icon: "filter", Anchor: entity.AnchorBottomStart, Action: i.CycleFilter},
	}
}
