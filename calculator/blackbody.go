package calculator

import (
	"math"

	"ppdmap/model"
)

// BlackBody evaluates Planck's law B_ν for a temperature [K] and a
// wavelength [cm]. The result is in erg s^-1 cm^-2 Hz^-1 sr^-1.
func BlackBody(temperature, wavelength float64) float64 {
	nu := model.C / wavelength // Hz
	return (2.0 * model.H * math.Pow(nu, 3) / model.C2) *
		(1.0 / (math.Exp(model.H*nu/(model.Kb*temperature)) - 1.0))
}

// Intensity 将温度平面转换为每像素流量密度 (Jy)，pixelSize 为像素对应的弧度
func Intensity(temperature model.Field, wavelength, pixelSize float64) model.Field {
	solidAngle := math.Pow(pixelSize, 2)
	return mapField(temperature, func(t float64) float64 {
		return BlackBody(t, wavelength) * solidAngle * model.BBToJy
	})
}
