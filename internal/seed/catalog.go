package seed

import "github.com/SabihaEylul/nextjswebb/internal/model"

func ptr[T any](v T) *T { return &v }

// Services is the salon's opening service list.
var Services = []model.ServiceFields{
	{
		Name:        "Saç Boyama",
		Description: ptr("Profesyonel saç boyama hizmeti. En kaliteli boyalar kullanılır."),
		Price:       250,
		ImageURL:    ptr("/images/sac-boyama.jpeg"),
	},
	{
		Name:        "Saç Kesimi",
		Description: ptr("Modern ve şık saç kesimi. Uzman kuaförlerimiz tarafından yapılır."),
		Price:       150,
		ImageURL:    ptr("/images/sac-kesimi.jpeg"),
	},
	{
		Name:        "Protez Tırnak",
		Description: ptr("Uzun ömürlü ve şık protez tırnak uygulaması."),
		Price:       300,
		ImageURL:    ptr("/images/protez-tirnak.jpeg"),
	},
	{
		Name:        "Kaynak Saç",
		Description: ptr("Doğal görünümlü kaynak saç uygulaması."),
		Price:       400,
		ImageURL:    ptr("/images/kaynak-sac.jpeg"),
	},
	{
		Name:        "Kirpik Lifting",
		Description: ptr("Kirpiklerinizi daha uzun ve dolgun gösteren lifting işlemi."),
		Price:       200,
		ImageURL:    ptr("/images/kirpik-lifting.jpeg"),
	},
	{
		Name:        "Kaş Tasarımı",
		Description: ptr("Yüzünüze en uygun kaş tasarımı ve şekillendirme."),
		Price:       120,
		ImageURL:    ptr("/images/kas-tasarimi.jpeg"),
	},
}

// Products is the salon's opening product list.
var Products = []model.ProductFields{
	{
		Title:       "Saç Boyama Ürünü",
		Description: "Profesyonel saç boyama ürünü. Uzun süreli renk koruması.",
		Price:       ptr(350.0),
		ImageURL:    "/images/sac-boyama.jpeg",
	},
	{
		Title:       "Saç Kesimi Seti",
		Description: "Evde saç kesimi için profesyonel set.",
		Price:       ptr(420.0),
		ImageURL:    "/images/sac-kesimi.jpeg",
	},
	{
		Title:       "Protez Tırnak Seti",
		Description: "Kendi tırnaklarınızı yapabilmeniz için tam set.",
		Price:       ptr(390.0),
		ImageURL:    "/images/protez-tirnak.jpeg",
	},
	{
		Title:       "Kaynak Saç Ürünü",
		Description: "Kaynak saç bakımı için özel ürünler.",
		Price:       ptr(480.0),
		ImageURL:    "/images/kaynak-sac.jpeg",
	},
	{
		Title:       "Kirpik Lifting Seti",
		Description: "Evde kirpik lifting için profesyonel set.",
		Price:       ptr(310.0),
		ImageURL:    "/images/kirpik-lifting.jpeg",
	},
}
