package router

import (
	"admission-advisor-be/internal/constant"
	"admission-advisor-be/internal/entity"
)

// RouteDef is a route with its labeled example utterances, used to seed
// the intent_routes table.
type RouteDef struct {
	Name        string
	Description string
	Response    string
	Examples    []string
}

// DefaultRoutes covers the question space of the admission domain.
// Example coverage matters more than phrasing: routing is nearest-example,
// so each route needs utterances spanning its paraphrases.
var DefaultRoutes = []RouteDef{
	{
		Name:        "score_lookup",
		Description: "Tra cứu điểm chuẩn, chỉ tiêu tuyển sinh",
		Examples: []string{
			"Điểm chuẩn Học viện Kỹ thuật Quân sự năm 2024",
			"Điểm chuẩn năm nay là bao nhiêu",
			"Với 25 điểm khối A có vào được không",
			"Trường nào điểm thấp nhất",
			"So sánh điểm chuẩn 2023 và 2024",
			"Chỉ tiêu tuyển sinh năm nay",
			"Điểm sàn các trường quân đội",
			"Học viện Quân y lấy bao nhiêu điểm",
			"Điểm chuẩn ngành công nghệ thông tin",
			"25 điểm vào được trường nào",
		},
	},
	{
		Name:        "regulation",
		Description: "Hỏi về quy định, tiêu chuẩn, điều kiện, thủ tục tuyển sinh",
		Examples: []string{
			"Tiêu chuẩn sức khỏe để thi vào quân đội",
			"Điều kiện đăng ký xét tuyển",
			"Yêu cầu về chính trị như thế nào",
			"Quy trình đăng ký xét tuyển",
			"Hồ sơ cần những gì",
			"Độ tuổi được đăng ký là bao nhiêu",
			"Chiều cao tối thiểu là bao nhiêu",
			"Có cần khám sức khỏe không",
			"Tiêu chuẩn về mắt như thế nào",
			"Quy định về đối tượng ưu tiên",
			"Thí sinh đã đăng ký sơ tuyển có phải đăng ký dự thi tốt nghiệp THPT không",
			"Quy trình sơ tuyển như thế nào",
			"Thủ tục nhập học ra sao",
			"Đối tượng nào được ưu tiên xét tuyển",
			"Khu vực tuyển sinh được quy định thế nào",
			"Thí sinh nữ có được đăng ký không",
			"Có cần xác nhận lý lịch không",
			"Điều kiện về học lực thế nào",
			"Quy định về cộng điểm ưu tiên",
			"Khám sức khỏe sơ tuyển gồm những gì",
			"Các trường quân đội sử dụng tổ hợp xét tuyển nào",
			"Tổ hợp môn thi vào trường quân đội",
			"Xét tuyển theo khối nào",
			"Nguyên tắc tuyển sinh quân sự",
		},
	},
	{
		Name:        "faq",
		Description: "Câu hỏi thường gặp về đời sống, chế độ, chính sách trong quân đội",
		Examples: []string{
			"Học quân đội có được miễn học phí không",
			"Ra trường được phân công ở đâu",
			"Có được về thăm nhà không",
			"Lương học viên là bao nhiêu",
			"Học bao lâu thì ra trường",
			"Có được dùng điện thoại không",
			"Ngành nào dễ xin việc nhất",
			"Nữ có được thi vào không",
			"Cận thị có được thi không",
			"Có hình xăm có được thi không",
		},
	},
	{
		Name:        "greeting",
		Description: "Chào hỏi, cảm ơn, tạm biệt",
		Response:    constant.GreetingResponse,
		Examples: []string{
			"Xin chào",
			"Chào bạn",
			"Hello",
			"Hi",
			"Cảm ơn bạn",
			"Thanks",
			"Tạm biệt",
			"Bye",
			"Bạn là ai",
			"Bạn có thể giúp gì",
		},
	},
	{
		Name:        "comparison",
		Description: "So sánh các trường, ngành học",
		Examples: []string{
			"So sánh Học viện KTQS và Học viện Quân y",
			"Trường nào tốt nhất",
			"Ngành nào có tương lai",
			"Nên chọn trường nào",
			"So sánh điểm các trường",
			"Trường nào khó vào nhất",
		},
	},
	{
		Name:        "hybrid_eligibility",
		Description: "Câu hỏi kết hợp điểm số và điều kiện xét tuyển",
		Examples: []string{
			"Tôi được 26 điểm, đủ điểm vào Học viện Quân y không và cần điều kiện sức khỏe gì",
			"25 điểm khối A00 có đỗ không, hồ sơ cần chuẩn bị những gì",
			"Đạt 27 điểm thì vào được trường nào và phải sơ tuyển ra sao",
			"Điểm của tôi đủ chưa và tiêu chuẩn chính trị thế nào",
		},
	},
	{
		Name:        "school_info",
		Description: "Giới thiệu, thông tin tổng quan về trường",
		Examples: []string{
			"Giới thiệu về Học viện Kỹ thuật Quân sự",
			"Học viện Hải quân có những ngành gì",
			"Thông tin về Trường Sĩ quan Lục quân",
			"Cho tôi biết về Học viện Quân y",
			"Trường Sĩ quan Chính trị đào tạo gì",
			"Học viện Biên phòng ở đâu",
			"Mô tả về Học viện Phòng không Không quân",
			"Trường Sĩ quan Công binh là trường gì",
			"Giới thiệu trường quân đội",
			"Học viện Hậu cần có gì đặc biệt",
		},
	},
}

// Flatten expands the route definitions into individual labeled examples.
func Flatten(defs []RouteDef) []*entity.RouteExample {
	var out []*entity.RouteExample
	for _, def := range defs {
		for _, ex := range def.Examples {
			out = append(out, &entity.RouteExample{
				Route:    def.Name,
				Example:  ex,
				Response: def.Response,
			})
		}
	}
	return out
}
