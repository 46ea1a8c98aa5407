package model

// 模型参数，长度单位与 pixel_size 一致，温度单位 K，波长单位 cm
type Params struct {
	Dim       int     `json:"dim"`
	PixelSize float64 `json:"pixel_size"`
	// 像素张角，弧度，只用于强度的立体角
	PixelAngle float64 `json:"pixel_angle"`

	// 椭圆修正（倾角投影）
	Elliptic bool    `json:"elliptic"`
	Pa       float64 `json:"pa"`    // 位置角，弧度
	Elong    float64 `json:"elong"` // 压缩比

	Star Star `json:"star"`
	Disk Disk `json:"disk"`

	Wavelength float64 `json:"wavelength"`
}

// 中心星
type Star struct {
	Radius      float64 `json:"radius"`
	Temperature float64 `json:"temperature"`
}

// 盘的径向和方位角分布
type Disk struct {
	// 为 true 时使用恒星辐照平衡温度，否则使用幂律温度
	ConstTemperature bool `json:"const_temperature"`

	InnerRadius      float64 `json:"inner_radius"`
	InnerTemperature float64 `json:"inner_temperature"`
	Q                float64 `json:"q"`

	InnerSigma float64 `json:"inner_sigma"`
	P          float64 `json:"p"`
	Opacity    float64 `json:"opacity"`

	// 方位角不对称
	Asymmetric bool    `json:"asymmetric"`
	A          float64 `json:"a"`
	Phi        float64 `json:"phi"`
}

// 一次计算得到的全部物理量
type Maps struct {
	Params           Params  `json:"params"`
	Grid             Grid    `json:"grid"`
	Radius           Field   `json:"radius"`
	Temperature      Field   `json:"temperature"`
	SurfaceDensity   Field   `json:"surface_density"`
	OpticalThickness Field   `json:"optical_thickness"`
	Intensity        Field   `json:"intensity"`
	Modulation       *Field  `json:"modulation,omitempty"`
	TotalFlux        Float   `json:"total_flux"`
	IntensityStats   Summary `json:"intensity_stats"`
}

type Summary struct {
	Min Float `json:"min"`
	Max Float `json:"max"`
	Sum Float `json:"sum"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
