// Package viewer renders the embeddable slideshow document served to
// third-party pages through an iframe.
package viewer

import (
	"html/template"
	"io"

	"github.com/sp3fck/hamgallery-backend/internal/models"
)

// Options are the display knobs a viewer URL may carry. They mirror the
// persisted iframe settings but come from query parameters here.
type Options struct {
	Width        int
	Height       int
	AutoPlay     bool
	Interval     int
	ShowTitles   bool
	ShowControls bool
}

type pageData struct {
	Options
	Photos []models.Photo
}

func Render(w io.Writer, photos []models.Photo, opts Options) error {
	return pageTmpl.Execute(w, pageData{Options: opts, Photos: photos})
}

var pageTmpl = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>SP3FCK Ham Radio Gallery</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Arial', sans-serif; background: #121212; color: #ffffff; overflow: hidden; }
.gallery-container { width: {{.Width}}px; height: {{.Height}}px; position: relative; background: #1e1e1e; border-radius: 8px; overflow: hidden; }
.photo-slide { position: absolute; top: 0; left: 0; width: 100%; height: 100%; opacity: 0; transition: opacity 0.5s ease-in-out; }
.photo-slide.active { opacity: 1; }
.photo-slide img { width: 100%; height: 100%; object-fit: cover; }
.photo-info { position: absolute; bottom: 0; left: 0; right: 0; background: linear-gradient(transparent, rgba(0,0,0,0.8)); padding: 20px 15px 10px; {{if not .ShowTitles}}display: none;{{end}} }
.photo-title { font-size: 14px; font-weight: bold; margin-bottom: 5px; color: #ff6b35; }
.photo-description { font-size: 12px; color: #b3b3b3; }
.controls { position: absolute; top: 50%; transform: translateY(-50%); background: rgba(0,0,0,0.5); color: white; border: none; width: 40px; height: 40px; border-radius: 50%; cursor: pointer; font-size: 18px; {{if not .ShowControls}}display: none;{{end}} }
.controls:hover { background: rgba(255,107,53,0.8); }
.prev { left: 10px; }
.next { right: 10px; }
.indicators { position: absolute; bottom: 10px; left: 50%; transform: translateX(-50%); display: flex; gap: 8px; {{if not .ShowControls}}display: none;{{end}} }
.indicator { width: 8px; height: 8px; border-radius: 50%; background: rgba(255,255,255,0.4); cursor: pointer; transition: background 0.3s; }
.indicator.active { background: #ff6b35; }
.sp3fck-badge { position: absolute; top: 10px; right: 10px; background: rgba(255,107,53,0.9); color: white; padding: 2px 6px; border-radius: 4px; font-size: 10px; font-weight: bold; font-family: 'Courier New', monospace; }
</style>
</head>
<body>
<div class="gallery-container">
  <div class="sp3fck-badge">SP3FCK</div>
  {{range $i, $p := .Photos}}
  <div class="photo-slide {{if eq $i 0}}active{{end}}" data-index="{{$i}}">
    <img src="{{$p.URL}}" alt="{{$p.Title}}">
    <div class="photo-info">
      <div class="photo-title">{{$p.Title}}</div>
      <div class="photo-description">{{$p.Description}}</div>
    </div>
  </div>
  {{end}}
  {{if .ShowControls}}
  <button class="controls prev" onclick="changeSlide(-1)">&lsaquo;</button>
  <button class="controls next" onclick="changeSlide(1)">&rsaquo;</button>
  <div class="indicators">
    {{range $i, $p := .Photos}}
    <div class="indicator {{if eq $i 0}}active{{end}}" onclick="goToSlide({{$i}})"></div>
    {{end}}
  </div>
  {{end}}
</div>
<script>
let currentSlide = 0;
const slides = document.querySelectorAll('.photo-slide');
const indicators = document.querySelectorAll('.indicator');
const totalSlides = slides.length;

function showSlide(index) {
  slides.forEach(slide => slide.classList.remove('active'));
  indicators.forEach(indicator => indicator.classList.remove('active'));
  slides[index].classList.add('active');
  if (indicators[index]) indicators[index].classList.add('active');
  currentSlide = index;
}

function changeSlide(direction) {
  if (totalSlides === 0) return;
  const newIndex = (currentSlide + direction + totalSlides) % totalSlides;
  showSlide(newIndex);
}

function goToSlide(index) {
  showSlide(index);
}

{{if .AutoPlay}}
setInterval(() => { changeSlide(1); }, {{.Interval}});
{{end}}
</script>
</body>
</html>
`))
