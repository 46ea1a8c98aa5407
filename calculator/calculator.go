package calculator

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"ppdmap/model"
)

// calculator 的接口定义

type Calculator interface {
	// 设置全部模型参数
	SetParams(p model.Params)
	Params() model.Params

	// 单独设置
	SetGrid(dim int, pixelSize, pixelAngle float64)
	SetEllipse(pa, elong float64, elliptic bool)
	SetStar(star model.Star)
	SetDisk(disk model.Disk)
	SetWavelength(wavelength float64)

	// 运行: 网格 -> 半径 -> 温度/面密度/光学厚度 -> 强度
	Run() (*model.Maps, error)
}

type calculator struct {
	mu     sync.RWMutex
	params model.Params
}

func NewCalculator(p model.Params) Calculator {
	return &calculator{params: p}
}

func (c *calculator) SetParams(p model.Params) {
	c.mu.Lock()
	c.params = p
	c.mu.Unlock()
	log.WithFields(log.Fields{
		"dim":        p.Dim,
		"pixelSize":  p.PixelSize,
		"pixelAngle": p.PixelAngle,
		"elliptic":   p.Elliptic,
		"wavelength": p.Wavelength,
	}).Info("设置模型参数")
}

func (c *calculator) Params() model.Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.params
}

func (c *calculator) SetGrid(dim int, pixelSize, pixelAngle float64) {
	c.mu.Lock()
	c.params.Dim = dim
	c.params.PixelSize = pixelSize
	c.params.PixelAngle = pixelAngle
	c.mu.Unlock()
	log.WithFields(log.Fields{
		"dim":        dim,
		"pixelSize":  pixelSize,
		"pixelAngle": pixelAngle,
	}).Info("设置网格")
}

func (c *calculator) SetEllipse(pa, elong float64, elliptic bool) {
	c.mu.Lock()
	c.params.Pa = pa
	c.params.Elong = elong
	c.params.Elliptic = elliptic
	c.mu.Unlock()
	log.WithFields(log.Fields{
		"pa":       pa,
		"elong":    elong,
		"elliptic": elliptic,
	}).Info("设置椭圆修正")
}

func (c *calculator) SetStar(star model.Star) {
	c.mu.Lock()
	c.params.Star = star
	c.mu.Unlock()
	log.WithFields(log.Fields{
		"radius":      star.Radius,
		"temperature": star.Temperature,
	}).Info("设置中心星")
}

func (c *calculator) SetDisk(disk model.Disk) {
	c.mu.Lock()
	c.params.Disk = disk
	c.mu.Unlock()
	log.WithFields(log.Fields{
		"constTemperature": disk.ConstTemperature,
		"innerRadius":      disk.InnerRadius,
		"innerTemperature": disk.InnerTemperature,
		"q":                disk.Q,
		"innerSigma":       disk.InnerSigma,
		"p":                disk.P,
		"opacity":          disk.Opacity,
		"asymmetric":       disk.Asymmetric,
	}).Info("设置盘参数")
}

func (c *calculator) SetWavelength(wavelength float64) {
	c.mu.Lock()
	c.params.Wavelength = wavelength
	c.mu.Unlock()
	log.WithField("wavelength", wavelength).Info("设置波长")
}

func (c *calculator) Run() (*model.Maps, error) {
	p := c.Params()
	if err := Validate(p); err != nil {
		return nil, err
	}

	startTime := time.Now()
	maps := &model.Maps{Params: p}

	maps.Grid = NewGrid(p.Dim, p.PixelSize, p.Pa, p.Elong, p.Elliptic)
	maps.Radius = Radius(maps.Grid)
	log.WithField("cost", time.Since(startTime)).Debug("grid built")

	if p.Disk.ConstTemperature {
		maps.Temperature = ConstTemperature(maps.Radius, p.Star.Radius, p.Star.Temperature)
	} else {
		maps.Temperature = TemperaturePowerLaw(maps.Radius, p.Disk.InnerTemperature, p.Disk.InnerRadius, p.Disk.Q)
	}
	maps.SurfaceDensity = SurfaceDensity(maps.Radius, p.Disk.InnerRadius, p.Disk.InnerSigma, p.Disk.P)
	maps.OpticalThickness = OpticalThickness(maps.SurfaceDensity, p.Disk.Opacity)
	if p.Disk.Asymmetric {
		modulation := AzimuthalModulation(maps.Grid, p.Disk.A, p.Disk.Phi)
		maps.Modulation = &modulation
	}
	log.WithField("cost", time.Since(startTime)).Debug("profiles evaluated")

	// 网格用 PixelSize，立体角用弧度制的 PixelAngle
	maps.Intensity = Intensity(maps.Temperature, p.Wavelength, p.PixelAngle)
	maps.IntensityStats = Summarize(maps.Intensity)
	maps.TotalFlux = model.Float(TotalFlux(maps.Intensity))

	log.WithFields(log.Fields{
		"dim":       p.Dim,
		"workers":   Workers(),
		"totalFlux": maps.TotalFlux,
		"cost":      time.Since(startTime),
	}).Info("计算完成")
	return maps, nil
}
