package constant

// Category is a fixed topic partition of the relational data.
// Each category maps to exactly one backing table.
type Category string

const (
	CategoryTraining Category = "training"
	CategoryMeeting  Category = "meeting"
	CategoryProject  Category = "project"
	CategoryUnit     Category = "unit"
	CategoryJob      Category = "job"
	CategoryNews     Category = "news"
)

// AllCategories is the canonical processing order. Relational result blocks
// are concatenated in this order.
var AllCategories = []Category{
	CategoryTraining,
	CategoryMeeting,
	CategoryProject,
	CategoryUnit,
	CategoryJob,
	CategoryNews,
}

// Caller roles
const (
	RoleGuest = "guest"
	RoleStaff = "staff"
)

// Record visibility tags
const (
	VisibilityPublic = "public"
	VisibilityStaff  = "staff"
)

// RestrictedTerms is the safety-filter denylist. Matching is done on the
// lower-cased query, same as keyword classification.
var RestrictedTerms = []string{
	"เงินเดือน",
	"สลิป",
	"รหัสผ่าน",
	"admin",
	"ตารางเวรของ",
	"ข้อมูลส่วนตัว",
	"สิทธิ์ผู้ดูแล",
}

// CategoryTriggers maps each category to its substring trigger terms.
// A category is selected when ANY of its terms appears in the query.
var CategoryTriggers = map[Category][]string{
	CategoryTraining: {"อบรม", "หลักสูตร", "ตาราง", "คอร์ส", "cneu", "หน่วยคะแนน", "2568", "2569"},
	CategoryMeeting:  {"ประชุม", "วาระ", "นัดหมาย", "meeting", "zoom"},
	CategoryProject:  {"โครงการ", "โปรเจ", "project"},
	CategoryUnit:     {"หน่วยงาน", "กลุ่มงาน", "แผนก", "ติดต่อ", "เบอร์โทร"},
	CategoryJob:      {"รับสมัคร", "สมัครงาน", "ตำแหน่งว่าง", "งานว่าง"},
	CategoryNews:     {"ข่าว", "ประกาศ", "ประชาสัมพันธ์"},
}

// Fixed reply strings. The external contract is "always reply with text",
// so every failure path resolves to one of these.
const (
	ChatRefusalMessage = "⛔ ขออภัยครับ ไม่สามารถเข้าถึงข้อมูลส่วนบุคคลหรือความลับทางราชการได้ครับ"
	ChatNoDataMessage  = "ไม่พบข้อมูลในระบบฐานข้อมูลภารกิจด้านการพยาบาลครับ"
	ChatApologyMessage = "ขออภัย ระบบขัดข้องชั่วคราวครับ (AI Error)"
)

// RelationalFallbackMarker is prepended to a category block when the
// specific-match query found nothing and latest records are shown instead.
const RelationalFallbackMarker = "(ไม่พบรายการที่ตรงกับคำค้น แสดงรายการล่าสุดแทน)"

// Context blob section headings and role annotations.
const (
	ContextRolePrefix        = "สถานะผู้ถาม: "
	ContextRoleStaffLabel    = "เจ้าหน้าที่"
	ContextRoleGuestLabel    = "บุคคลทั่วไป"
	ContextDocumentsHeading  = "เอกสารสนับสนุน:"
	ContextRecordsHeading    = "ข้อมูลจากฐานข้อมูล:"
)

// GenerationPromptTemplate receives the context blob and the user query.
// Directives: answer from context only, omit fields with no value, keep
// meeting ids and passcodes together, fixed no-data reply, Buddhist-era note.
const GenerationPromptTemplate = `คุณคือ Bot RJ Nurse ผู้ช่วยตอบคำถามภารกิจด้านการพยาบาล ตอบโดยใช้ข้อมูลต่อไปนี้เท่านั้น:
%s

คำถาม: %s

ข้อควรระวัง:
- ตอบจากข้อมูลที่ให้มาเท่านั้น ห้ามใช้ความรู้ภายนอก
- หัวข้อใดไม่มีข้อมูล ให้ข้ามหัวข้อนั้นไป ไม่ต้องบอกว่าไม่มีข้อมูล
- ถ้ามีหมายเลขห้องประชุมและรหัสผ่านประชุม ให้แสดงคู่กันเสมอ
- ถ้าไม่พบข้อมูลเลย ให้ตอบว่า "` + ChatNoDataMessage + `"
- ปี พ.ศ. ในข้อมูลให้คงเป็น พ.ศ. (ค.ศ. + 543)
- ตอบอย่างมืออาชีพ สุภาพ`

// DefaultGenerationModels is the ordered model-identifier fallback chain.
// Overridable via GENERATION_MODELS.
var DefaultGenerationModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
	"gemini-1.0-pro",
}

// RegisterCommandPrefix marks a registration message on the webhook channel:
// "ลงทะเบียน <ชื่อ> <หน่วยงาน>"
const RegisterCommandPrefix = "ลงทะเบียน"

const RegisterSuccessMessage = "ลงทะเบียนเจ้าหน้าที่เรียบร้อยแล้วครับ"
