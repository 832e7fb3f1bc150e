package database

import (
	"student-union-system/internal/model"
	"student-union-system/tools"

	"gorm.io/gorm"
)

// Seed 填充初始数据。管理员账号始终保证存在；
// 通知、活动、成员仅在对应表为空时插入示例数据。
func Seed(db *gorm.DB) error {
	now := model.Now()

	// 管理员（账号 admin，初始密码 123456）
	var adminCount int64
	if err := db.Model(&model.Admin{}).Where("username = ?", "admin").Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		admin := model.Admin{
			Username:     "admin",
			PasswordHash: tools.PasswordEncrypt("123456"),
			CreatedAt:    now,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	var noticeCount int64
	if err := db.Model(&model.Notice{}).Count(&noticeCount).Error; err != nil {
		return err
	}
	if noticeCount == 0 {
		notices := []model.Notice{
			{Title: "关于举办 2026 年春季校园科技节的通知", Content: "为激发同学们的创新意识和实践能力，学生会将于 3 月下旬举办校园科技节，欢迎各班积极报名参加。", PublishTime: "2026-03-01", CreatedAt: now},
			{Title: "校园艺术节节目征集通知", Content: "欢迎热爱音乐、舞蹈、朗诵、戏剧等艺术形式的同学报名参加，展示才艺、丰富校园文化生活。", PublishTime: "2026-02-20", CreatedAt: now},
			{Title: "学生会纳新面试安排通知", Content: "已报名加入学生会的同学，请按照年级和时间段参加面试，具体安排见教务处公告栏和微信群通知。", PublishTime: "2026-02-15", CreatedAt: now},
			{Title: "关于开展校园文明督导活动的通知", Content: "为营造整洁有序的校园环境，学生会将组织文明督导小组，对校园卫生、礼貌用语等进行引导和检查。", PublishTime: "2026-02-05", CreatedAt: now},
			{Title: "冬季安全教育主题班会通知", Content: "请各班班主任结合学校统一资料，组织开展冬季安全教育主题班会，重点提醒交通、用电和网络安全。", PublishTime: "2026-01-28", CreatedAt: now},
		}
		if err := db.Create(&notices).Error; err != nil {
			return err
		}
	}

	var activityCount int64
	if err := db.Model(&model.Activity{}).Count(&activityCount).Error; err != nil {
		return err
	}
	if activityCount == 0 {
		activities := []model.Activity{
			{Title: "2026 年春季校园科技节", StartTime: "2026-03-25 14:00 - 17:30", EndTime: "2026-03-25 14:00 - 17:30", Description: "由学生会学习部组织，包含科技作品展示、科普讲座和现场互动实验等环节，欢迎对科技感兴趣的同学报名参加。", Status: model.StatusUpcoming, ImageURL: "https://images.pexels.com/photos/3184296/pexels-photo-3184296.jpeg?auto=compress&cs=tinysrgb&w=1200", CreatedAt: now},
			{Title: "校园读书节 —— 好书分享会", StartTime: "2026-04-10 15:30 - 17:00", EndTime: "2026-04-10 15:30 - 17:00", Description: "邀请同学们推荐自己喜欢的一本书，可以进行读书分享、朗读片段或展示相关手抄报作品，营造良好的阅读氛围。", Status: model.StatusUpcoming, ImageURL: "https://images.pexels.com/photos/3059748/pexels-photo-3059748.jpeg?auto=compress&cs=tinysrgb&w=1200", CreatedAt: now},
			{Title: "校园环保主题海报征集", StartTime: "2026-02-20 - 2026-03-05", EndTime: "2026-02-20 - 2026-03-05", Description: "由学生会宣传部发起，征集以「低碳生活」「绿色校园」为主题的原创海报作品，优秀作品将在校园公告栏和公众号展示。", Status: model.StatusOngoing, ImageURL: "https://images.pexels.com/photos/256541/pexels-photo-256541.jpeg?auto=compress&cs=tinysrgb&w=1200", CreatedAt: now},
			{Title: "校园篮球班级联赛", StartTime: "2026-02-18 - 2026-03-10（放学后）", EndTime: "2026-02-18 - 2026-03-10（放学后）", Description: "由文体部组织，各班组队参加，分年级进行小组赛和决赛，倡导健康运动与团队合作精神。", Status: model.StatusOngoing, ImageURL: "https://images.pexels.com/photos/267885/pexels-photo-267885.jpeg?auto=compress&cs=tinysrgb&w=1200", CreatedAt: now},
			{Title: "迎新文艺晚会", StartTime: "2026-01-15 18:30 - 20:30", EndTime: "2026-01-15 18:30 - 20:30", Description: "由学生会主办，各社团联合参与，节目形式包括合唱、舞蹈、朗诵、小品等，为新同学展示校园风采。", Status: model.StatusFinished, ImageURL: "https://images.pexels.com/photos/2280551/pexels-photo-2280551.jpeg?auto=compress&cs=tinysrgb&w=1200", CreatedAt: now},
			{Title: "期末复习互助交流会", StartTime: "2025-12-20 16:00 - 17:30", EndTime: "2025-12-20 16:00 - 17:30", Description: "学习部组织优秀同学分享复习方法和资料，同学之间自由提问与交流，帮助大家更好地准备期末考试。", Status: model.StatusFinished, ImageURL: "https://images.pexels.com/photos/3184611/pexels-photo-3184611.jpeg?auto=compress&cs=tinysrgb&w=1200", CreatedAt: now},
		}
		if err := db.Create(&activities).Error; err != nil {
			return err
		}
	}

	var memberCount int64
	if err := db.Model(&model.Member{}).Count(&memberCount).Error; err != nil {
		return err
	}
	if memberCount == 0 {
		members := []model.Member{
			{Name: "张晨曦", Department: "主席团", Role: "学生会主席", Intro: "负责学生会整体工作统筹，协调各部门沟通与合作，代表学生向学校反馈意见和建议。", CreatedAt: now},
			{Name: "李雨桐", Department: "主席团", Role: "副主席", Intro: "协助主席开展日常工作，重点负责活动策划与流程把控，保证活动顺利、安全、有序进行。", CreatedAt: now},
			{Name: "王子涵", Department: "主席团", Role: "副主席", Intro: "负责对接各年级学生会成员，收集同学们的需求和建议，并参与制定学生会工作计划。", CreatedAt: now},
			{Name: "刘思涵", Department: "学习部", Role: "部长", Intro: "负责策划学习经验交流会、学习互助活动等，组织收集和分享优秀学习方法与资料。", CreatedAt: now},
			{Name: "陈子豪", Department: "学习部", Role: "干事", Intro: "协助整理学习资料、制作复习指南，并参与组织考试经验分享与错题交流活动。", CreatedAt: now},
			{Name: "赵一鸣", Department: "学习部", Role: "干事", Intro: "负责联系各班学习委员，收集同学在学习方面的困难和建议，并反馈给老师与学生会。", CreatedAt: now},
			{Name: "周子悦", Department: "文体部", Role: "部长", Intro: "负责策划校园艺术节、迎新晚会等文艺活动，以及组织各类文体比赛与节目排练。", CreatedAt: now},
			{Name: "高宇航", Department: "文体部", Role: "干事", Intro: "主要负责篮球联赛、运动会等体育活动的场地协调、秩序维护与物资准备。", CreatedAt: now},
			{Name: "孙语彤", Department: "文体部", Role: "干事", Intro: "负责联系节目表演同学，协助音响、灯光等舞台事务，保证演出效果和现场氛围。", CreatedAt: now},
		}
		if err := db.Create(&members).Error; err != nil {
			return err
		}
	}

	return nil
}
