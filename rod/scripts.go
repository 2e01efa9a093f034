package rod

// Extraction scripts evaluated against the live DOM. Each script returns a
// string; the structured ones return JSON matching the domain types' field
// tags so both extraction tiers produce the same result shape.

const textJS = `() => {
	const unwanted = document.querySelectorAll('script, style, nav, footer, header, aside, .ad, .advertisement');
	unwanted.forEach(el => el.remove());

	const mainSelectors = ['main', 'article', '.content', '#content', '.main-content',
		'.post-content', '.entry-content', '.article-content', '.post-body',
		'[data-testid="tweet"]', '.tweet', '.post', '.status'];

	let mainContent = null;
	for (const selector of mainSelectors) {
		mainContent = document.querySelector(selector);
		if (mainContent) break;
	}
	if (!mainContent) {
		mainContent = document.body;
	}
	return mainContent ? (mainContent.innerText || mainContent.textContent || '') : '';
}`

const imagesJS = `() => {
	const imgs = Array.from(document.querySelectorAll('img')).slice(0, 10);
	return JSON.stringify(imgs.map(img => ({
		src: img.src,
		alt: img.alt || '',
		title: img.title || '',
		description: [img.alt ? 'Alt: ' + img.alt : '', img.title ? 'Title: ' + img.title : '']
			.filter(p => p).join('; ')
	})).filter(img => img.src));
}`

const visualElementsJS = `() => {
	const elements = [];
	for (const video of Array.from(document.querySelectorAll('video, iframe')).slice(0, 5)) {
		elements.push({
			type: 'video',
			src: video.src || '',
			title: video.title || '',
			description: 'Video element: ' + (video.title || 'No title')
		});
	}
	for (const embed of Array.from(document.querySelectorAll('embed, object')).slice(0, 3)) {
		elements.push({
			type: 'embed',
			src: embed.src || '',
			title: '',
			description: 'Embedded content: ' + (embed.type || 'Unknown type')
		});
	}
	return JSON.stringify(elements);
}`

const metadataJS = `() => {
	const content = (selector) => {
		const el = document.querySelector(selector);
		return el ? (el.content || '') : '';
	};
	const titleEl = document.querySelector('title');
	return JSON.stringify({
		title: titleEl ? titleEl.textContent.trim() : '',
		description: content('meta[name="description"]'),
		author: content('meta[name="author"]'),
		keywords: content('meta[name="keywords"]'),
		og_title: content('meta[property="og:title"]'),
		og_description: content('meta[property="og:description"]'),
		og_image: content('meta[property="og:image"]'),
		twitter_title: content('meta[name="twitter:title"]'),
		twitter_description: content('meta[name="twitter:description"]'),
		twitter_image: content('meta[name="twitter:image"]')
	});
}`
