package service

import (
	"encoding/json"

	"github.com/sozhane/backend/internal/model"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

type seedTemplate struct {
	ID          string
	Title       string
	Icon        string
	Description string
	Category    string
	IsPopular   bool
	SortOrder   int
	Fields      []model.TemplateField
	BaseText    string
}

// InitDefaultTemplates seeds the built-in contract catalog. Idempotent:
// existing rows are left untouched so locally edited templates survive
// restarts.
func InitDefaultTemplates(db *gorm.DB) error {
	var count int64
	db.Model(&model.ContractTemplate{}).Where("id = ?", "nda").Count(&count)
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, seed := range defaultTemplates {
			schema, err := json.Marshal(seed.Fields)
			if err != nil {
				return err
			}
			template := &model.ContractTemplate{
				ID:           seed.ID,
				Title:        seed.Title,
				Icon:         seed.Icon,
				Description:  seed.Description,
				Category:     seed.Category,
				IsPopular:    seed.IsPopular,
				FieldsSchema: schema,
				BaseText:     seed.BaseText,
				SortOrder:    seed.SortOrder,
				Active:       true,
			}
			if err := tx.Create(template).Error; err != nil {
				return err
			}
			klog.V(6).Infof("seeded contract template %s", seed.ID)
		}
		return nil
	})
}

var jurisdictionOptions = []string{"İstanbul", "Ankara", "İzmir", "Bursa", "Antalya", "Diğer"}

var defaultTemplates = []seedTemplate{
	{
		ID:          "nda",
		Title:       "Gizlilik Sözleşmesi (NDA)",
		Icon:        "🔒",
		Description: "Ticari sırlarınızı ve gizli bilgilerinizi koruma altına alın.",
		Category:    "Koruma",
		IsPopular:   true,
		SortOrder:   1,
		Fields: []model.TemplateField{
			{ID: "discloser_name", Label: "Bilgiyi Açıklayan Taraf (Ad Soyad / Ünvan)", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "discloser_address", Label: "Açıklayan Taraf Adresi", Type: model.FieldTextarea, Required: true, Section: "Taraflar"},
			{ID: "discloser_tax", Label: "Vergi No / TC Kimlik No", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "receiver_name", Label: "Bilgiyi Alan Taraf (Ad Soyad / Ünvan)", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "receiver_address", Label: "Alan Taraf Adresi", Type: model.FieldTextarea, Required: true, Section: "Taraflar"},
			{ID: "receiver_tax", Label: "Vergi No / TC Kimlik No", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "confidential_info", Label: "Gizli Bilginin Kapsamı", Type: model.FieldTextarea, Required: true, Section: "Kapsam", Placeholder: "Örn: Müşteri listeleri, fiyatlandırma stratejileri, teknik dökümanlar..."},
			{ID: "purpose", Label: "Bilgi Paylaşım Amacı", Type: model.FieldText, Required: true, Section: "Kapsam", Placeholder: "Örn: Ortak proje geliştirme, iş birliği değerlendirmesi..."},
			{ID: "duration_months", Label: "Gizlilik Süresi (Ay)", Type: model.FieldNumber, Required: true, Section: "Süre", DefaultValue: 24},
			{ID: "penalty_amount", Label: "Cezai Şart Tutarı (₺)", Type: model.FieldNumber, Required: false, Section: "Yaptırımlar", Placeholder: "Opsiyonel"},
			{ID: "jurisdiction", Label: "Yetkili Mahkeme", Type: model.FieldSelect, Options: jurisdictionOptions, Required: true, Section: "Hukuki"},
			{ID: "special_clauses", Label: "Özel Maddeler", Type: model.FieldTextarea, Required: false, Section: "Ek Maddeler", Placeholder: "Eklemek istediğiniz özel hükümler..."},
		},
		BaseText: `GİZLİLİK SÖZLEŞMESİ

1. TARAFLAR

İşbu Gizlilik Sözleşmesi ("Sözleşme"), bir tarafta {{discloser_name}} ("Açıklayan Taraf") ile diğer tarafta {{receiver_name}} ("Alan Taraf") arasında aşağıda belirtilen şartlar dahilinde akdedilmiştir.

Açıklayan Taraf:
Ad/Ünvan: {{discloser_name}}
Adres: {{discloser_address}}
Vergi/TC No: {{discloser_tax}}

Alan Taraf:
Ad/Ünvan: {{receiver_name}}
Adres: {{receiver_address}}
Vergi/TC No: {{receiver_tax}}

2. TANIMLAR

"Gizli Bilgi" terimi, Açıklayan Taraf tarafından Alan Taraf'a yazılı, sözlü veya elektronik ortamda açıklanan, ticari, mali, teknik veya başka nitelikteki her türlü bilgiyi ifade eder. Bu kapsamda özellikle şu bilgiler yer almaktadır:

{{confidential_info}}

3. AMAÇ

İşbu Sözleşme kapsamında gizli bilgilerin paylaşılma amacı: {{purpose}}

4. GİZLİLİK YÜKÜMLÜLÜKLERİ

4.1. Alan Taraf, Gizli Bilgileri yalnızca Sözleşme'de belirtilen amaç doğrultusunda kullanacaktır.
4.2. Alan Taraf, Gizli Bilgileri üçüncü kişilerle paylaşmayacak, çoğaltmayacak ve amacı dışında kullanmayacaktır.
4.3. Alan Taraf, Gizli Bilgilerin korunması için makul özeni gösterecek ve kendi gizli bilgilerine uyguladığı koruma tedbirlerinden daha azını uygulamayacaktır.
4.4. Alan Taraf, Gizli Bilgilere erişimi yalnızca bilmesi gereken çalışanları ile sınırlı tutacaktır.

5. İSTİSNALAR

Aşağıdaki bilgiler gizlilik yükümlülüğü kapsamı dışındadır:
a) Açıklanma tarihinde kamuya açık olan veya sonradan Alan Taraf'ın kusuru olmaksızın kamuya açık hale gelen bilgiler
b) Alan Taraf'ın bağımsız olarak geliştirdiği bilgiler
c) Üçüncü bir taraftan gizlilik yükümlülüğü olmaksızın meşru yollarla elde edilen bilgiler
d) Yasal zorunluluk veya mahkeme/idari makam kararı nedeniyle açıklanması gereken bilgiler (bu durumda Açıklayan Taraf derhal bilgilendirilecektir)

6. SÜRE

İşbu Sözleşme imza tarihinden itibaren {{duration_months}} ({{duration_months_text}}) ay süreyle geçerlidir. Gizlilik yükümlülükleri, Sözleşme'nin herhangi bir nedenle sona ermesinden sonra da {{duration_months}} ay boyunca devam eder.

7. CEZAİ ŞART

{{penalty_clause}}

8. İADE YÜKÜMLÜLÜĞÜ

Sözleşme'nin sona ermesi veya Açıklayan Taraf'ın talebi üzerine, Alan Taraf elindeki tüm Gizli Bilgileri ve bunların kopyalarını 10 (on) iş günü içinde iade edecek veya imha edecek ve buna ilişkin yazılı beyan verecektir.

9. UYUŞMAZLIKLARIN ÇÖZÜMÜ

İşbu Sözleşme'den doğabilecek uyuşmazlıklarda {{jurisdiction}} Mahkemeleri ve İcra Daireleri yetkilidir.

10. GENEL HÜKÜMLER

10.1. İşbu Sözleşme, tarafların karşılıklı yazılı mutabakatı ile değiştirilebilir.
10.2. Sözleşme'nin herhangi bir hükmünün geçersiz sayılması, diğer hükümlerin geçerliliğini etkilemez (bölünebilirlik).
10.3. İşbu Sözleşme, 6098 sayılı Türk Borçlar Kanunu hükümlerine tabidir.
10.4. Taraflar arasındaki bildirimler yazılı olarak ve yukarıda belirtilen adreslere yapılacaktır.

{{special_clauses_section}}

İşbu Sözleşme, 2 (iki) nüsha olarak düzenlenmiş ve taraflarca okunarak imza altına alınmıştır.


Açıklayan Taraf                          Alan Taraf
{{discloser_name}}                       {{receiver_name}}

İmza: _______________                    İmza: _______________
Tarih: ___/___/______                    Tarih: ___/___/______`,
	},
	{
		ID:          "service",
		Title:       "Hizmet Sözleşmesi",
		Icon:        "📋",
		Description: "Hizmet alım-satımı için kapsamlı sözleşme.",
		Category:    "Ticari",
		IsPopular:   true,
		SortOrder:   2,
		Fields: []model.TemplateField{
			{ID: "provider_name", Label: "Hizmet Veren (Ad Soyad / Ünvan)", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "provider_address", Label: "Hizmet Veren Adresi", Type: model.FieldTextarea, Required: true, Section: "Taraflar"},
			{ID: "provider_tax", Label: "Vergi No / TC Kimlik No", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "client_name", Label: "Hizmet Alan (Ad Soyad / Ünvan)", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "client_address", Label: "Hizmet Alan Adresi", Type: model.FieldTextarea, Required: true, Section: "Taraflar"},
			{ID: "client_tax", Label: "Vergi No / TC Kimlik No", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "service_description", Label: "Hizmetin Tanımı ve Kapsamı", Type: model.FieldTextarea, Required: true, Section: "Hizmet Detayları", Placeholder: "Verilecek hizmetin detaylı açıklaması..."},
			{ID: "deliverables", Label: "Teslim Edilecekler", Type: model.FieldTextarea, Required: true, Section: "Hizmet Detayları", Placeholder: "Somut çıktılar, raporlar, ürünler..."},
			{ID: "start_date", Label: "Başlangıç Tarihi", Type: model.FieldDate, Required: true, Section: "Süre ve Ödeme"},
			{ID: "end_date", Label: "Bitiş Tarihi", Type: model.FieldDate, Required: true, Section: "Süre ve Ödeme"},
			{ID: "total_fee", Label: "Toplam Hizmet Bedeli (₺)", Type: model.FieldNumber, Required: true, Section: "Süre ve Ödeme"},
			{ID: "payment_terms", Label: "Ödeme Koşulları", Type: model.FieldSelect, Options: []string{"Peşin", "50% Peşin - 50% Teslimde", "Aylık Eşit Taksit", "Teslimde Tek Seferde", "Özel"}, Required: true, Section: "Süre ve Ödeme"},
			{ID: "revision_count", Label: "Ücretsiz Revizyon Hakkı", Type: model.FieldNumber, Required: false, Section: "Hizmet Detayları", DefaultValue: 2},
			{ID: "cancellation_notice", Label: "Fesih İhbar Süresi (Gün)", Type: model.FieldNumber, Required: true, Section: "Fesih", DefaultValue: 15},
			{ID: "jurisdiction", Label: "Yetkili Mahkeme", Type: model.FieldSelect, Options: jurisdictionOptions, Required: true, Section: "Hukuki"},
			{ID: "special_clauses", Label: "Özel Maddeler", Type: model.FieldTextarea, Required: false, Section: "Ek Maddeler"},
		},
		BaseText: `HİZMET SÖZLEŞMESİ

1. TARAFLAR

İşbu Hizmet Sözleşmesi ("Sözleşme"), aşağıda bilgileri yer alan taraflar arasında karşılıklı mutabakat ile akdedilmiştir.

Hizmet Veren ("Yüklenici"):
Ad/Ünvan: {{provider_name}}
Adres: {{provider_address}}
Vergi/TC No: {{provider_tax}}

Hizmet Alan ("İşveren"):
Ad/Ünvan: {{client_name}}
Adres: {{client_address}}
Vergi/TC No: {{client_tax}}

2. SÖZLEŞMENİN KONUSU

Yüklenici, işbu Sözleşme'de belirtilen koşullar dahilinde aşağıdaki hizmeti İşveren'e sunacaktır:

{{service_description}}

3. TESLİM EDİLECEKLER

Hizmet kapsamında aşağıdaki çıktılar teslim edilecektir:
{{deliverables}}

4. SÜRE

4.1. Sözleşme {{start_date}} tarihinde başlar ve {{end_date}} tarihinde sona erer.
4.2. Tarafların yazılı mutabakatı ile süre uzatılabilir.
4.3. Mücbir sebep halleri süreyi otomatik olarak uzatır.

5. HİZMET BEDELİ VE ÖDEME

5.1. Toplam hizmet bedeli {{total_fee}} TL'dir (KDV hariç).
5.2. Ödeme koşulları: {{payment_terms}}
5.3. Fatura, ilgili ödeme döneminde düzenlenir ve fatura tarihinden itibaren 7 (yedi) iş günü içinde ödeme yapılır.
5.4. Geç ödemelere 6183 sayılı Kanun'un 51. maddesi uyarınca gecikme zammı oranında faiz uygulanır.
5.5. KDV, yasal oran üzerinden ayrıca hesaplanarak faturaya yansıtılır.

6. REVİZYON VE DEĞİŞİKLİKLER

6.1. İşveren, teslim edilen çalışmalar için {{revision_count}} adet ücretsiz revizyon hakkına sahiptir.
6.2. Revizyon talepleri teslimden itibaren 5 (beş) iş günü içinde yazılı olarak bildirilir.
6.3. Kapsam dışı değişiklikler veya ek revizyonlar, tarafların mutabakatı ile ayrıca ücretlendirilir.

7. TARAFLARIN YÜKÜMLÜLÜKLERİ

7.1. Yüklenici:
   a) Hizmeti profesyonel standartlarda, özenle ve zamanında sunmakla,
   b) İşveren'in ticari bilgilerini gizli tutmakla,
   c) İlgili mevzuata uygun hareket etmekle yükümlüdür.

7.2. İşveren:
   a) Gerekli bilgi, belge ve materyalleri zamanında sağlamakla,
   b) Hizmet bedelini zamanında ödemekle,
   c) Proje kapsamıyla ilgili kararları makul sürede vermekle yükümlüdür.

8. FİKRİ MÜLKİYET

8.1. Hizmet kapsamında üretilen tüm özgün eserler, hizmet bedelinin tamamının ödenmesi ile birlikte 5846 sayılı Fikir ve Sanat Eserleri Kanunu kapsamında İşveren'e devredilir.
8.2. Yüklenici, eserleri referans/portföy amaçlı kullanım hakkını saklı tutar (aksi yazılı olarak kararlaştırılmadıkça).
8.3. Üçüncü kişilerin fikri mülkiyet haklarını ihlal eden eserlerden Yüklenici sorumludur.

9. GİZLİLİK

9.1. Taraflar, Sözleşme kapsamında edindikleri tüm ticari, teknik ve mali bilgileri gizli tutacaktır.
9.2. Gizlilik yükümlülüğü, Sözleşme'nin sona ermesinden sonra 2 (iki) yıl daha devam eder.

10. FESİH

10.1. Taraflardan her biri, {{cancellation_notice}} gün önceden yazılı bildirimde bulunarak Sözleşme'yi feshedebilir.
10.2. Fesih halinde, fesih tarihine kadar tamamlanmış işlerin bedeli tam olarak ödenir.
10.3. Haklı fesih halleri: Taraflardan birinin Sözleşme yükümlülüklerini yazılı uyarıya rağmen 15 gün içinde yerine getirmemesi halinde, diğer taraf Sözleşme'yi derhal feshedebilir.

11. MÜCBİR SEBEPLER

Tarafların kontrolü dışındaki olağanüstü durumlar (doğal afet, savaş, salgın hastalık, yasal düzenleme değişiklikleri vb.) mücbir sebep sayılır. Bu süre zarfında yükümlülükler askıya alınır. Mücbir sebep 30 (otuz) günü aşarsa, taraflar Sözleşme'yi tazminatsız feshedebilir.

12. UYUŞMAZLIKLARIN ÇÖZÜMÜ

12.1. Taraflar, uyuşmazlıkları öncelikle müzakere yoluyla çözmeye çalışacaktır.
12.2. Müzakere ile çözülemeyen uyuşmazlıklarda {{jurisdiction}} Mahkemeleri ve İcra Daireleri yetkilidir.

13. GENEL HÜKÜMLER

13.1. İşbu Sözleşme, 6098 sayılı Türk Borçlar Kanunu hükümlerine tabidir.
13.2. Sözleşme'de yapılacak değişiklikler yazılı olarak ve tarafların karşılıklı imzası ile geçerlidir.
13.3. Sözleşme'nin herhangi bir hükmünün geçersiz sayılması, diğer hükümlerin geçerliliğini etkilemez.

{{special_clauses_section}}

İşbu Sözleşme, 2 (iki) nüsha olarak düzenlenmiş ve taraflarca okunarak imza altına alınmıştır.


Hizmet Veren                              Hizmet Alan
{{provider_name}}                         {{client_name}}

İmza: _______________                     İmza: _______________
Tarih: ___/___/______                     Tarih: ___/___/______`,
	},
	{
		ID:          "freelance",
		Title:       "Freelance Sözleşme",
		Icon:        "💼",
		Description: "Bağımsız çalışanlar için iş yapma sözleşmesi.",
		Category:    "Freelance",
		IsPopular:   true,
		SortOrder:   3,
		Fields: []model.TemplateField{
			{ID: "freelancer_name", Label: "Freelancer (Ad Soyad)", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "freelancer_address", Label: "Freelancer Adresi", Type: model.FieldTextarea, Required: true, Section: "Taraflar"},
			{ID: "freelancer_tax", Label: "TC Kimlik No / Vergi No", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "freelancer_iban", Label: "IBAN", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "client_name", Label: "İşveren / Müşteri (Ad Soyad / Ünvan)", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "client_address", Label: "İşveren Adresi", Type: model.FieldTextarea, Required: true, Section: "Taraflar"},
			{ID: "client_tax", Label: "Vergi No / TC Kimlik No", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "project_name", Label: "Proje Adı", Type: model.FieldText, Required: true, Section: "Proje Detayları"},
			{ID: "project_scope", Label: "Proje Kapsamı ve Yapılacak İşler", Type: model.FieldTextarea, Required: true, Section: "Proje Detayları"},
			{ID: "milestones", Label: "Kilometre Taşları / Teslimatlar", Type: model.FieldTextarea, Required: true, Section: "Proje Detayları", Placeholder: "1. Tasarım teslimi - 15 gün\n2. Geliştirme - 30 gün\n3. Test ve teslim - 7 gün"},
			{ID: "project_fee", Label: "Proje Bedeli (₺)", Type: model.FieldNumber, Required: true, Section: "Ödeme"},
			{ID: "payment_schedule", Label: "Ödeme Planı", Type: model.FieldSelect, Options: []string{"Peşin", "50% Başlangıç - 50% Teslim", "Kilometre Taşı Bazlı", "Haftalık", "Teslimde"}, Required: true, Section: "Ödeme"},
			{ID: "deadline", Label: "Proje Teslim Tarihi", Type: model.FieldDate, Required: true, Section: "Süre"},
			{ID: "revision_count", Label: "Ücretsiz Revizyon Sayısı", Type: model.FieldNumber, Required: false, Section: "Proje Detayları", DefaultValue: 3},
			{ID: "ip_transfer", Label: "Fikri Mülkiyet Devri", Type: model.FieldSelect, Options: []string{"Tam devir (ödeme sonrası)", "Lisans (kullanım hakkı)", "Freelancer'da kalır"}, Required: true, Section: "Haklar"},
			{ID: "jurisdiction", Label: "Yetkili Mahkeme", Type: model.FieldSelect, Options: jurisdictionOptions, Required: true, Section: "Hukuki"},
			{ID: "special_clauses", Label: "Özel Maddeler", Type: model.FieldTextarea, Required: false, Section: "Ek Maddeler"},
		},
		BaseText: `FREELANCE HİZMET SÖZLEŞMESİ
(Bağımsız Yüklenici Sözleşmesi)

1. TARAFLAR

İşbu Sözleşme, bağımsız yüklenici sıfatıyla hizmet sunacak olan Freelancer ile İşveren arasında akdedilmiştir.

Freelancer (Bağımsız Yüklenici):
Ad Soyad: {{freelancer_name}}
Adres: {{freelancer_address}}
TC/Vergi No: {{freelancer_tax}}
IBAN: {{freelancer_iban}}

İşveren:
Ad/Ünvan: {{client_name}}
Adres: {{client_address}}
Vergi/TC No: {{client_tax}}

2. BAĞIMSIZ YÜKLENİCİ STATÜSÜ

2.1. Freelancer, işbu Sözleşme kapsamında 6098 sayılı Türk Borçlar Kanunu'nun eser sözleşmesine ilişkin hükümleri (m. 470-486) çerçevesinde bağımsız yüklenici sıfatıyla hareket etmekte olup, taraflar arasında 4857 sayılı İş Kanunu kapsamında bir işçi-işveren ilişkisi bulunmamaktadır.
2.2. Freelancer, 5510 sayılı Sosyal Sigortalar ve Genel Sağlık Sigortası Kanunu kapsamındaki sosyal güvenlik yükümlülüklerini bizzat yerine getirecektir.
2.3. Freelancer, çalışma saatlerini, çalışma yerini ve yöntemini serbestçe belirler; İşveren'in bu konularda talimat verme yetkisi yoktur.
2.4. Freelancer, hizmeti bizzat ifa edecektir. Üçüncü kişilere devir için İşveren'in yazılı onayı gereklidir.

3. PROJE KAPSAMI

Proje Adı: {{project_name}}

Kapsam ve Yapılacak İşler:
{{project_scope}}

4. TESLİMAT TAKVİMİ

{{milestones}}

Son Teslim Tarihi: {{deadline}}

Teslim, İşveren'e e-posta veya kararlaştırılan kanal üzerinden yapılır. İşveren, teslimden itibaren 5 (beş) iş günü içinde kabul veya revizyon talebini bildirir.

5. ÜCRET VE ÖDEME

5.1. Toplam proje bedeli: {{project_fee}} TL (KDV hariç)
5.2. Ödeme planı: {{payment_schedule}}
5.3. Freelancer, serbest meslek makbuzu veya fatura düzenleyecektir.
5.4. Stopaj kesintisi: 193 sayılı Gelir Vergisi Kanunu'nun 94. maddesi uyarınca İşveren %20 stopaj kesintisi yapabilir (Freelancer'ın vergi mükellefiyet durumuna göre).
5.5. Ödeme, Freelancer'ın yukarıda belirtilen IBAN hesabına yapılır.
5.6. Geç ödemelere aylık %1,5 gecikme faizi uygulanır.

6. REVİZYON VE DEĞİŞİKLİKLER

6.1. {{revision_count}} adet ücretsiz revizyon hakkı mevcuttur.
6.2. Revizyon talepleri yazılı olarak bildirilir.
6.3. Kapsam dışı değişiklikler ayrıca ücretlendirilir ve ek süre gerektirebilir.
6.4. Ek talepler yazılı onay ile eklenebilir (scope change).

7. FİKRİ MÜLKİYET HAKLARI

7.1. Fikri mülkiyet düzenlemesi: {{ip_transfer}}
7.2. 5846 sayılı Fikir ve Sanat Eserleri Kanunu hükümleri saklıdır.
7.3. Freelancer, eser üzerindeki manevi haklarını (isim hakkı) her halükarda korur.
7.4. Devir öncesi Freelancer'ın mevcut araç, kütüphane ve know-how'ı Freelancer'da kalır.

8. GİZLİLİK

8.1. Taraflar, proje kapsamında edinilen tüm ticari ve teknik bilgileri gizli tutacaktır.
8.2. Gizlilik yükümlülüğü, Sözleşme'nin sona ermesinden sonra 2 (iki) yıl daha devam eder.
8.3. Freelancer, referans amaçlı kullanım için İşveren'in yazılı onayını alır.

9. GARANTİ VE SORUMLULUK

9.1. Freelancer, teslim edilen eserin özgün olduğunu ve üçüncü kişi haklarını ihlal etmediğini garanti eder.
9.2. Freelancer'ın sorumluluğu, toplam proje bedeli ile sınırlıdır.
9.3. Dolaylı, özel veya cezai zararlardan sorumluluk kabul edilmez.

10. FESİH

10.1. Taraflardan her biri, 10 (on) gün önceden yazılı bildirimde bulunarak Sözleşme'yi feshedebilir.
10.2. Fesih halinde, fesih tarihine kadar tamamlanan iş oranında ödeme yapılır.
10.3. İşveren'in haksız feshi halinde, proje bedelinin tamamı ödenir.

11. UYUŞMAZLIK

11.1. Taraflar uyuşmazlıkları öncelikle müzakere yoluyla çözmeye çalışır.
11.2. {{jurisdiction}} Mahkemeleri ve İcra Daireleri yetkilidir.
11.3. 6098 sayılı Türk Borçlar Kanunu hükümleri uygulanır.

{{special_clauses_section}}

İşbu Sözleşme, 2 (iki) nüsha olarak düzenlenmiş ve taraflarca okunarak imza altına alınmıştır.


Freelancer                                İşveren
{{freelancer_name}}                       {{client_name}}

İmza: _______________                     İmza: _______________
Tarih: ___/___/______                     Tarih: ___/___/______`,
	},
	{
		ID:          "partnership",
		Title:       "Ortaklık Sözleşmesi",
		Icon:        "🤝",
		Description: "Adi ortaklık veya iş ortaklığı kurulumu için.",
		Category:    "Ortaklık",
		IsPopular:   false,
		SortOrder:   4,
		Fields: []model.TemplateField{
			{ID: "partner1_name", Label: "1. Ortak (Ad Soyad / Ünvan)", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "partner1_address", Label: "1. Ortak Adresi", Type: model.FieldTextarea, Required: true, Section: "Taraflar"},
			{ID: "partner1_tax", Label: "1. Ortak Vergi/TC No", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "partner1_share", Label: "1. Ortak Pay Oranı (%)", Type: model.FieldNumber, Required: true, Section: "Ortaklık Yapısı", DefaultValue: 50},
			{ID: "partner2_name", Label: "2. Ortak (Ad Soyad / Ünvan)", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "partner2_address", Label: "2. Ortak Adresi", Type: model.FieldTextarea, Required: true, Section: "Taraflar"},
			{ID: "partner2_tax", Label: "2. Ortak Vergi/TC No", Type: model.FieldText, Required: true, Section: "Taraflar"},
			{ID: "partner2_share", Label: "2. Ortak Pay Oranı (%)", Type: model.FieldNumber, Required: true, Section: "Ortaklık Yapısı", DefaultValue: 50},
			{ID: "partnership_name", Label: "Ortaklık / İş Adı", Type: model.FieldText, Required: true, Section: "Ortaklık Detayları"},
			{ID: "partnership_purpose", Label: "Ortaklığın Faaliyet Konusu", Type: model.FieldTextarea, Required: true, Section: "Ortaklık Detayları"},
			{ID: "initial_capital", Label: "Başlangıç Sermayesi (₺)", Type: model.FieldNumber, Required: true, Section: "Sermaye"},
			{ID: "profit_distribution", Label: "Kâr Dağıtım Periyodu", Type: model.FieldSelect, Options: []string{"Aylık", "3 Aylık", "6 Aylık", "Yıllık"}, Required: true, Section: "Sermaye"},
			{ID: "management", Label: "Yönetim Yetkisi", Type: model.FieldSelect, Options: []string{"Müşterek (Birlikte)", "1. Ortak Yetkili", "2. Ortak Yetkili", "Dönüşümlü"}, Required: true, Section: "Yönetim"},
			{ID: "exit_notice", Label: "Çıkış İhbar Süresi (Ay)", Type: model.FieldNumber, Required: true, Section: "Çıkış", DefaultValue: 3},
			{ID: "jurisdiction", Label: "Yetkili Mahkeme", Type: model.FieldSelect, Options: jurisdictionOptions, Required: true, Section: "Hukuki"},
			{ID: "special_clauses", Label: "Özel Maddeler", Type: model.FieldTextarea, Required: false, Section: "Ek Maddeler"},
		},
		BaseText: `ADİ ORTAKLIK SÖZLEŞMESİ

1. TARAFLAR

İşbu Adi Ortaklık Sözleşmesi, 6098 sayılı Türk Borçlar Kanunu'nun 620-645. maddeleri çerçevesinde aşağıdaki taraflar arasında akdedilmiştir.

1. Ortak:
Ad/Ünvan: {{partner1_name}}
Adres: {{partner1_address}}
Vergi/TC No: {{partner1_tax}}
Ortaklık Payı: %{{partner1_share}}

2. Ortak:
Ad/Ünvan: {{partner2_name}}
Adres: {{partner2_address}}
Vergi/TC No: {{partner2_tax}}
Ortaklık Payı: %{{partner2_share}}

2. ORTAKLIĞIN ADI VE KONUSU

2.1. Ortaklık Adı: {{partnership_name}}
2.2. Faaliyet Konusu: {{partnership_purpose}}
2.3. Adi ortaklığın tüzel kişiliği yoktur; ortaklar kendi adlarına hareket eder.

3. SERMAYE

3.1. Ortaklığın toplam başlangıç sermayesi {{initial_capital}} TL'dir.
3.2. 1. Ortak sermaye katkısı: %{{partner1_share}} oranında
3.3. 2. Ortak sermaye katkısı: %{{partner2_share}} oranında
3.4. Sermaye katkıları, Sözleşme'nin imzalanmasından itibaren 15 (on beş) gün içinde ortaklık hesabına yatırılacaktır.
3.5. Sermaye artırımı veya azaltımı, ortakların oybirliği ile kararlaştırılır.
3.6. Nakit dışı sermaye katkıları (emek, know-how, ekipman) ayrıca değerlenerek belirlenir.

4. KÂR VE ZARAR DAĞILIMI

4.1. Kâr ve zarar, ortaklık payları oranında dağıtılır.
4.2. Kâr dağıtım periyodu: {{profit_distribution}}
4.3. Kâr dağıtımı, ortaklık giderleri ve yedek akçe ayrıldıktan sonra yapılır.
4.4. Zarar halinde ortaklar, payları oranında sorumludur (TBK m. 623).
4.5. Ortaklık hesapları ve defterleri düzenli tutulur; her ortak inceleme hakkına sahiptir.

5. YÖNETİM VE TEMSİL

5.1. Yönetim yetkisi: {{management}}
5.2. Olağan işler yönetici ortak(lar) tarafından yürütülür.
5.3. Aşağıdaki kararlar ortakların oybirliği ile alınır:
   a) Toplam sermayenin %10'unu aşan borçlanma
   b) Taşınmaz alım-satımı
   c) Yeni ortak alımı
   d) Ortaklık konusunun değiştirilmesi
   e) Tasfiye kararı

6. ORTAKLARIN YÜKÜMLÜLÜKLERİ

6.1. Ortaklar, TBK m. 626 uyarınca rekabet yasağına uyacaktır.
6.2. Ortaklar, ortaklık işlerinde basiretli bir iş insanı gibi davranacaktır.
6.3. Ortaklar, ortaklığa ait bilgileri gizli tutacak, üçüncü kişilerle paylaşmayacaktır.
6.4. Ortaklar, kişisel harcamalarını ortaklık hesabından karşılayamaz.

7. ORTAKLIKTAN ÇIKIŞ VE ÇIKARMA

7.1. Çıkış: Çıkmak isteyen ortak, {{exit_notice}} ay önceden yazılı bildirimde bulunmalıdır.
7.2. Çıkan ortağın payı, çıkış tarihindeki güncel değerleme üzerinden hesaplanarak 60 (altmış) gün içinde ödenir.
7.3. Diğer ortak(lar)ın ön alım hakkı mevcuttur (30 gün içinde kullanılmalıdır).
7.4. Çıkarma: Haklı sebeplerin varlığı halinde, diğer ortakların talebiyle mahkeme kararıyla çıkarma yapılabilir (TBK m. 633).

8. ORTAKLIĞIN SONA ERMESİ

8.1. Ortaklık aşağıdaki hallerde sona erer:
   a) Ortakların oybirliği ile karar alması
   b) Ortaklık amacının gerçekleşmesi veya gerçekleşmesinin imkânsız hale gelmesi
   c) Mahkeme kararı
   d) Tüm ortakların ayrılması
8.2. Tasfiye halinde: Önce borçlar ödenir, kalan varlıklar ortaklık payları oranında paylaşılır.
8.3. Tasfiye memuru, ortakların mutabakatı ile belirlenir.

9. MÜCBİR SEBEPLER

Doğal afet, savaş, salgın, yasal değişiklik gibi tarafların kontrolü dışındaki olaylar mücbir sebep sayılır. Mücbir sebep süresince yükümlülükler askıya alınır.

10. UYUŞMAZLIK

10.1. Taraflar, uyuşmazlıkları öncelikle müzakere ve arabuluculuk yoluyla çözmeye çalışır.
10.2. {{jurisdiction}} Mahkemeleri ve İcra Daireleri yetkilidir.
10.3. 6098 sayılı Türk Borçlar Kanunu hükümleri uygulanır.

{{special_clauses_section}}

İşbu Sözleşme, 2 (iki) nüsha olarak düzenlenmiş ve taraflarca okunarak imza altına alınmıştır.


1. Ortak                                  2. Ortak
{{partner1_name}}                         {{partner2_name}}

İmza: _______________                     İmza: _______________
Tarih: ___/___/______                     Tarih: ___/___/______`,
	},
}
